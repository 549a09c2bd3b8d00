package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"DATABASE_URL", "JWT_SECRET", "SERVER_PORT", "SCHEDULE_CONFLICT_ACTIVE_ONLY"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %s, want 8080", cfg.ServerPort)
	}
	if cfg.ConflictActiveOnly {
		t.Error("ConflictActiveOnly must default to off")
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr = %s, want :8080", cfg.Addr())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SCHEDULE_CONFLICT_ACTIVE_ONLY", "true")

	cfg := Load()

	if cfg.ServerPort != "9000" {
		t.Errorf("ServerPort = %s, want 9000", cfg.ServerPort)
	}
	if !cfg.ConflictActiveOnly {
		t.Error("ConflictActiveOnly should be enabled")
	}
}
