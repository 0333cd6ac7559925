package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	Port string
	Env  string

	DefaultLength  int
	DefaultNumbers bool
	DefaultSymbols bool
	SecureRandom   bool

	// LogFile receives TUI logs. Empty discards them.
	LogFile string

	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DefaultLength:  getEnvInt("PASSWIZ_DEFAULT_LENGTH", 8),
		DefaultNumbers: getEnvBool("PASSWIZ_DEFAULT_NUMBERS", false),
		DefaultSymbols: getEnvBool("PASSWIZ_DEFAULT_SYMBOLS", false),
		SecureRandom:   getEnvBool("PASSWIZ_SECURE_RANDOM", true),
		LogFile:        getEnv("PASSWIZ_LOG_FILE", ""),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid number in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}
