package config

import (
	"strings"
	"testing"

	"github.com/rkl-hq/season-engine/internal/platform/logging"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("AppEnv = %q, want %q", cfg.AppEnv, EnvDev)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.RegularSeasonGames != 15 {
		t.Fatalf("RegularSeasonGames = %d, want 15", cfg.RegularSeasonGames)
	}
	if cfg.ReplacementFactor != 0.9 {
		t.Fatalf("ReplacementFactor = %v, want 0.9", cfg.ReplacementFactor)
	}
	if cfg.WinThresholdFactor != 0.92 {
		t.Fatalf("WinThresholdFactor = %v, want 0.92", cfg.WinThresholdFactor)
	}
	if cfg.WriteBatchSize != 400 {
		t.Fatalf("WriteBatchSize = %d, want 400", cfg.WriteBatchSize)
	}
	if cfg.RecomputeMaxWorkers != 2 {
		t.Fatalf("RecomputeMaxWorkers = %d, want 2", cfg.RecomputeMaxWorkers)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("REGULAR_SEASON_GAMES", "18")
	t.Setenv("WRITE_BATCH_SIZE", "250")
	t.Setenv("RECOMPUTE_MAX_WORKERS", "6")
	t.Setenv("DB_URL", "postgres://localhost:5432/league?sslmode=disable")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AppEnv != EnvProd {
		t.Fatalf("AppEnv = %q, want %q", cfg.AppEnv, EnvProd)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.RegularSeasonGames != 18 {
		t.Fatalf("RegularSeasonGames = %d, want 18", cfg.RegularSeasonGames)
	}
	if cfg.WriteBatchSize != 250 {
		t.Fatalf("WriteBatchSize = %d, want 250", cfg.WriteBatchSize)
	}
	if cfg.RecomputeMaxWorkers != 6 {
		t.Fatalf("RecomputeMaxWorkers = %d, want 6", cfg.RecomputeMaxWorkers)
	}
	if cfg.DBURL == "" {
		t.Fatal("DBURL not picked up from env")
	}
}

func TestLoadRejectsInvalidAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", "sandbox")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for invalid APP_ENV")
	}
	if !strings.Contains(err.Error(), "APP_ENV") {
		t.Fatalf("error %q does not mention APP_ENV", err)
	}
}

func TestLoadRejectsBadBatchSize(t *testing.T) {
	t.Setenv("WRITE_BATCH_SIZE", "0")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for WRITE_BATCH_SIZE=0")
	}
}

func TestLoadRequiresQStashTokenWhenEnabled(t *testing.T) {
	t.Setenv("QSTASH_ENABLED", "true")
	t.Setenv("QSTASH_BASE_URL", "https://qstash.example.com")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error when QSTASH_TOKEN missing")
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]logging.Level{
		"debug":   logging.LevelDebug,
		"INFO":    logging.LevelInfo,
		"warning": logging.LevelWarn,
		"error":   logging.LevelError,
		"bogus":   logging.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLogLevel(in); got != want {
			t.Fatalf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
