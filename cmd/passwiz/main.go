package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/passwiz/passwiz-go/internal/cli"
	"github.com/passwiz/passwiz-go/internal/config"
)

func main() {
	// A missing .env is normal for a desktop tool.
	_ = godotenv.Load()

	if err := cli.NewRootCommand(config.Load()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
