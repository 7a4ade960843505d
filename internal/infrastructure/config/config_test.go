package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/hstraders/interestledger/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "REDIS_URL", "HTTP_PORT", "SNAPSHOT_CRON", "CORS_ALLOWED_ORIGINS"} {
		unsetEnv(t, key)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL == "" {
		t.Fatalf("expected default database URL to be set")
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.SettingsCacheTTL != 5*time.Minute {
		t.Fatalf("expected default settings cache TTL 5m, got %s", cfg.SettingsCacheTTL)
	}

	if cfg.SnapshotCron != "@every 1h" {
		t.Fatalf("expected default snapshot schedule, got %q", cfg.SnapshotCron)
	}

	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard CORS origin, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_TIMEOUT", "45s")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SNAPSHOT_CRON", "0 6 * * *")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL != "postgres://example" {
		t.Fatalf("expected custom database URL, got %s", cfg.DatabaseURL)
	}

	if cfg.RedisURL != "redis://example" {
		t.Fatalf("expected custom redis URL, got %s", cfg.RedisURL)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.DatabaseTimeout != 45*time.Second {
		t.Fatalf("expected database timeout override, got %s", cfg.DatabaseTimeout)
	}

	if cfg.RateLimitRPS != 2.5 {
		t.Fatalf("expected rate limit override, got %v", cfg.RateLimitRPS)
	}

	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("expected two CORS origins, got %v", cfg.CORSAllowedOrigins)
	}

	if cfg.SnapshotCron != "0 6 * * *" {
		t.Fatalf("expected snapshot schedule override, got %q", cfg.SnapshotCron)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}

func TestLoadRejectsInconsistentPool(t *testing.T) {
	t.Setenv("DATABASE_MIN_CONNS", "20")
	t.Setenv("DATABASE_MAX_CONNS", "5")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error when min conns exceed max conns")
	}
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()

	if original, ok := os.LookupEnv(key); ok {
		t.Cleanup(func() { _ = os.Setenv(key, original) })
	}
	_ = os.Unsetenv(key)
}
