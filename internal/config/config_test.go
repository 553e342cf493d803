package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("SPACETASK_HOME", t.TempDir())

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if !cfg.ConfirmDelete || cfg.LogLevel != "INFO" || cfg.HistoryLimit != 0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if filepath.Base(cfg.DBPath) != "spacetask.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SPACETASK_HOME", dir)

	cfg := DefaultConfig()
	cfg.ConfirmDelete = false
	cfg.HistoryLimit = 20
	cfg.LogLevel = "DEBUG"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ConfirmDelete || got.HistoryLimit != 20 || got.LogLevel != "DEBUG" {
		t.Errorf("loaded %+v", got)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SPACETASK_HOME", dir)
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("db_path: /from/file.db\nlog_level: ERROR\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SPACETASK_DB", "/from/env.db")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.DBPath != "/from/env.db" {
		t.Errorf("db path = %q, want env value", cfg.DBPath)
	}
	if cfg.LogLevel != "ERROR" {
		t.Errorf("log level = %q, want file value", cfg.LogLevel)
	}
}

func TestInvalidYAMLAndLimit(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SPACETASK_HOME", dir)

	bad := filepath.Join(dir, "bad.yaml")
	_ = os.WriteFile(bad, []byte("confirm_delete: [oops"), 0644)
	if _, err := LoadFrom(bad); err == nil {
		t.Error("expected parse error")
	}

	neg := filepath.Join(dir, "neg.yaml")
	_ = os.WriteFile(neg, []byte("history_limit: -3\n"), 0644)
	if _, err := LoadFrom(neg); err == nil {
		t.Error("expected history_limit error")
	}
}
