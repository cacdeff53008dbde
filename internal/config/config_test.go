package config

import (
	"strings"
	"testing"
	"time"

	"github.com/pucklabs/fantasy-hockey/internal/platform/logging"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("AppEnv = %q, want %q", cfg.AppEnv, EnvDev)
	}
	if cfg.StorageMode != StorageMemory {
		t.Fatalf("StorageMode = %q, want %q", cfg.StorageMode, StorageMemory)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.GoalieBaselineScore != 55 {
		t.Fatalf("GoalieBaselineScore = %v, want 55", cfg.GoalieBaselineScore)
	}
	if cfg.GoaliesPerTeam != 2 {
		t.Fatalf("GoaliesPerTeam = %d, want 2", cfg.GoaliesPerTeam)
	}
	if cfg.LineupIRCap != 3 {
		t.Fatalf("LineupIRCap = %d, want 3", cfg.LineupIRCap)
	}
	wantQuotas := map[string]int{"C": 2, "LW": 2, "RW": 2, "D": 4, "G": 2, "UTIL": 1}
	if len(cfg.LineupSlotQuotas) != len(wantQuotas) {
		t.Fatalf("LineupSlotQuotas = %v, want %v", cfg.LineupSlotQuotas, wantQuotas)
	}
	for slot, count := range wantQuotas {
		if cfg.LineupSlotQuotas[slot] != count {
			t.Fatalf("LineupSlotQuotas[%s] = %d, want %d", slot, cfg.LineupSlotQuotas[slot], count)
		}
	}
	if cfg.AvailabilityEnabled {
		t.Fatal("AvailabilityEnabled should default to false")
	}
	if cfg.CacheTTL != 60*time.Second {
		t.Fatalf("CacheTTL = %v, want 60s", cfg.CacheTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("STORAGE_MODE", "postgres")
	t.Setenv("ENGINE_GOALIE_BASELINE_SCORE", "40.5")
	t.Setenv("LINEUP_SLOT_QUOTAS", "c:1,lw:1,rw:1,d:2,g:1,util:1")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

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
	if cfg.StorageMode != StoragePostgres {
		t.Fatalf("StorageMode = %q, want %q", cfg.StorageMode, StoragePostgres)
	}
	if cfg.GoalieBaselineScore != 40.5 {
		t.Fatalf("GoalieBaselineScore = %v, want 40.5", cfg.GoalieBaselineScore)
	}
	if cfg.LineupSlotQuotas["UTIL"] != 1 || cfg.LineupSlotQuotas["D"] != 2 {
		t.Fatalf("LineupSlotQuotas = %v, want lowercase keys normalized", cfg.LineupSlotQuotas)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://admin.example.com" {
		t.Fatalf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{name: "bad app env", key: "APP_ENV", value: "production", want: "invalid APP_ENV"},
		{name: "bad storage mode", key: "STORAGE_MODE", value: "sqlite", want: "invalid STORAGE_MODE"},
		{name: "bad cache flag", key: "CACHE_ENABLED", value: "yep", want: "parse CACHE_ENABLED"},
		{name: "negative baseline", key: "ENGINE_GOALIE_BASELINE_SCORE", value: "-1", want: "ENGINE_GOALIE_BASELINE_SCORE must be >= 0"},
		{name: "zero goalies", key: "ENGINE_GOALIES_PER_TEAM", value: "0", want: "ENGINE_GOALIES_PER_TEAM must be >= 1"},
		{name: "bad quota item", key: "LINEUP_SLOT_QUOTAS", value: "C=2", want: "parse LINEUP_SLOT_QUOTAS"},
		{name: "negative quota", key: "LINEUP_SLOT_QUOTAS", value: "C:-1", want: "parse LINEUP_SLOT_QUOTAS"},
		{name: "bad timeout", key: "AVAILABILITY_TIMEOUT", value: "fast", want: "parse AVAILABILITY_TIMEOUT"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			if err == nil {
				t.Fatalf("Load() accepted %s=%q", tc.key, tc.value)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error = %q, want substring %q", err, tc.want)
			}
		})
	}
}

func TestLoadRequiresFeedURLWhenEnabled(t *testing.T) {
	t.Setenv("AVAILABILITY_ENABLED", "true")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() accepted enabled availability feed without a base URL")
	}
	if !strings.Contains(err.Error(), "AVAILABILITY_BASE_URL") {
		t.Fatalf("error = %q, want AVAILABILITY_BASE_URL mention", err)
	}
}
