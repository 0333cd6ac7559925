package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "PASSWIZ_DEFAULT_LENGTH", "PASSWIZ_DEFAULT_NUMBERS",
		"PASSWIZ_DEFAULT_SYMBOLS", "PASSWIZ_SECURE_RANDOM", "PASSWIZ_LOG_FILE",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DefaultLength != 8 {
		t.Errorf("DefaultLength = %d, want 8", cfg.DefaultLength)
	}
	if cfg.DefaultNumbers || cfg.DefaultSymbols {
		t.Error("character sets should default to off")
	}
	if !cfg.SecureRandom {
		t.Error("SecureRandom should default to true")
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Errorf("rate limit = %v/%d, want 5/10", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PASSWIZ_DEFAULT_LENGTH", "20")
	t.Setenv("PASSWIZ_DEFAULT_NUMBERS", "true")
	t.Setenv("PASSWIZ_DEFAULT_SYMBOLS", "1")
	t.Setenv("PASSWIZ_SECURE_RANDOM", "false")
	t.Setenv("RATE_LIMIT_RPS", "0.5")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.DefaultLength != 20 {
		t.Errorf("DefaultLength = %d, want 20", cfg.DefaultLength)
	}
	if !cfg.DefaultNumbers || !cfg.DefaultSymbols {
		t.Error("character sets should be enabled")
	}
	if cfg.SecureRandom {
		t.Error("SecureRandom should be disabled")
	}
	if cfg.RateLimitRPS != 0.5 {
		t.Errorf("RateLimitRPS = %v, want 0.5", cfg.RateLimitRPS)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("PASSWIZ_DEFAULT_LENGTH", "twelve")
	t.Setenv("PASSWIZ_SECURE_RANDOM", "maybe")
	t.Setenv("RATE_LIMIT_RPS", "fast")

	cfg := Load()

	if cfg.DefaultLength != 8 {
		t.Errorf("DefaultLength = %d, want 8", cfg.DefaultLength)
	}
	if !cfg.SecureRandom {
		t.Error("SecureRandom should fall back to true")
	}
	if cfg.RateLimitRPS != 5 {
		t.Errorf("RateLimitRPS = %v, want 5", cfg.RateLimitRPS)
	}
}
