package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GENERATOR_TODAY", "2025-03-12")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	today := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	if !cfg.Generator.Today.Equal(today) {
		t.Errorf("today = %v, want %v", cfg.Generator.Today, today)
	}
	if want := today.AddDate(0, 0, 17); !cfg.Generator.ScheduleEndDate.Equal(want) {
		t.Errorf("schedule end = %v, want %v", cfg.Generator.ScheduleEndDate, want)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"history days", cfg.Generator.HistoryDays, 7},
		{"patients", cfg.Generator.NumPatients, 800},
		{"appointments", cfg.Generator.NumAppointments, 5000},
		{"attempt factor", cfg.Generator.AttemptFactor, 3},
		{"db host", cfg.DB.Host, "supabase-db"},
		{"jwt issuer", cfg.JWT.Issuer, "supabase"},
		{"jwt expiry", cfg.JWT.Expiry, 365 * 24 * time.Hour},
		{"identity timeout", cfg.Identity.Timeout, 30 * time.Second},
		{"seed retries", cfg.Seeder.MaxRetries, 60},
		{"seed interval", cfg.Seeder.RetryInterval, time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("GENERATOR_TODAY", "2025-03-12")
	t.Setenv("GENERATOR_SCHEDULE_END_DATE", "2025-04-01")
	t.Setenv("GENERATOR_SEED", "42")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("SEED_RETRY_INTERVAL", "250ms")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if want := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC); !cfg.Generator.ScheduleEndDate.Equal(want) {
		t.Errorf("schedule end = %v, want %v", cfg.Generator.ScheduleEndDate, want)
	}
	if cfg.Generator.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Generator.Seed)
	}
	if !cfg.Redis.Enabled() {
		t.Error("redis should be enabled when REDIS_HOST is set")
	}
	if cfg.Seeder.RetryInterval != 250*time.Millisecond {
		t.Errorf("retry interval = %v, want 250ms", cfg.Seeder.RetryInterval)
	}
}

func TestLoadConfigInvalidDate(t *testing.T) {
	t.Setenv("GENERATOR_TODAY", "12/03/2025")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for malformed GENERATOR_TODAY")
	}
}
