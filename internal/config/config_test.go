package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.LogLevel != "info" {
		t.Fatalf("default log level = %q, want info", cfg.LogLevel)
	}
	if cfg.DisplayScale != 2 {
		t.Fatalf("default display scale = %d, want 2", cfg.DisplayScale)
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pocketcore.toml")
	contents := "rom = \"game.gb\"\nlog_level = \"debug\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ROM != "game.gb" {
		t.Fatalf("ROM = %q, want game.gb", cfg.ROM)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.DisplayScale != 2 {
		t.Fatalf("DisplayScale = %d, want default 2 (unset in file)", cfg.DisplayScale)
	}
}

func TestApplyEnvOverridesLogLevel(t *testing.T) {
	t.Setenv("POCKETCORE_LOG_LEVEL", "trace")
	cfg := Default()
	cfg.ApplyEnv()
	if cfg.LogLevel != "trace" {
		t.Fatalf("LogLevel = %q, want trace", cfg.LogLevel)
	}
}
