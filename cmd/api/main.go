package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/passwiz/passwiz-go/internal/config"
	"github.com/passwiz/passwiz-go/internal/generator"
	"github.com/passwiz/passwiz-go/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	src := generator.NewSecureSource()
	if !cfg.SecureRandom {
		slog.Warn("using non-cryptographic random source")
		src = generator.NewFastSource(uint64(os.Getpid()), 0x9e3779b97f4a7c15)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, src); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
