package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("UNDERCITY_DB_DSN", "")
	t.Setenv("UNDERCITY_ADDR", "")
	t.Setenv("UNDERCITY_RESOLVE_TIMEOUT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("addr=%q want :8080", cfg.Addr)
	}
	if cfg.ResolveTimeout.Std() != 2*time.Second {
		t.Fatalf("timeout=%v want 2s", cfg.ResolveTimeout.Std())
	}
	if cfg.Regen.Amount != 5 {
		t.Fatalf("regen amount=%d want 5", cfg.Regen.Amount)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validate to require dsn")
	}
}

func TestLoad_FileThenEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
addr: ":9090"
database_dsn: "postgres://file"
resolve_timeout: 500ms
regen:
  cron: "@every 10m"
  amount: 3
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("UNDERCITY_DB_DSN", "postgres://env")
	t.Setenv("UNDERCITY_ADDR", "")
	t.Setenv("UNDERCITY_RESOLVE_TIMEOUT", "")
	t.Setenv("UNDERCITY_REGEN_CRON", "")
	t.Setenv("UNDERCITY_REGEN_AMOUNT", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabaseDSN != "postgres://env" {
		t.Fatalf("dsn=%q want env override", cfg.DatabaseDSN)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("addr=%q want :9090 from file", cfg.Addr)
	}
	if cfg.ResolveTimeout.Std() != 500*time.Millisecond {
		t.Fatalf("timeout=%v want 500ms", cfg.ResolveTimeout.Std())
	}
	if cfg.Regen.Cron != "@every 10m" || cfg.Regen.Amount != 3 {
		t.Fatalf("regen=%+v", cfg.Regen)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}
