// Package config loads pocketcore's optional TOML configuration file and
// layers it with environment and flag overrides, per SPEC_FULL.md §4.6.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the settings the CLI shell and display viewer read.
type Config struct {
	ROM          string `toml:"rom"`
	LogLevel     string `toml:"log_level"`
	DisplayScale int    `toml:"display_scale"`
}

// Default returns the compiled-in defaults, the bottom of the precedence
// stack described in SPEC_FULL.md §4.6.
func Default() Config {
	return Config{
		LogLevel:     "info",
		DisplayScale: 2,
	}
}

// Load reads a TOML file at path and merges it over Default(); zero-valued
// fields in the file do not override the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	var fromFile Config
	if _, err := toml.DecodeFile(path, &fromFile); err != nil {
		return Config{}, err
	}

	if fromFile.ROM != "" {
		cfg.ROM = fromFile.ROM
	}
	if fromFile.LogLevel != "" {
		cfg.LogLevel = fromFile.LogLevel
	}
	if fromFile.DisplayScale != 0 {
		cfg.DisplayScale = fromFile.DisplayScale
	}
	return cfg, nil
}

// ApplyEnv overrides LogLevel from the POCKETCORE_LOG_LEVEL environment
// variable, per spec.md §6 ("a log-level environment variable controls the
// verbosity of the trace sink; no other environment is consumed").
func (c *Config) ApplyEnv() {
	if v := os.Getenv("POCKETCORE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}
