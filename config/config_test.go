package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// TestLoadDefaults tests the values used when nothing is configured
func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	Setup(v)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.OutputDir != "." {
		t.Errorf("Expected output dir '.', got %s", cfg.OutputDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected log level info, got %s", cfg.LogLevel)
	}
}

// TestLoadFromEnv tests the GENESYS_ environment variables
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GENESYS_OUTPUT_DIR", "/tmp/models")
	t.Setenv("GENESYS_LOG_LEVEL", "DEBUG")

	v := viper.New()
	Setup(v)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.OutputDir != "/tmp/models" {
		t.Errorf("Expected output dir /tmp/models, got %s", cfg.OutputDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.LogLevel)
	}
}

// TestReadInConfig tests an explicit config file and env precedence over it
func TestReadInConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "genesys.yaml")
	if err := os.WriteFile(path, []byte("output_dir: out\nlog_level: warn\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("GENESYS_LOG_LEVEL", "error")

	v := viper.New()
	Setup(v)
	used, err := ReadInConfig(v, path)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	if used != path {
		t.Errorf("Expected config file %s, got %s", path, used)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("Expected output dir out, got %s", cfg.OutputDir)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("Expected env to override file, got %s", cfg.LogLevel)
	}
}

// TestReadInConfigMissing tests that a missing explicit file is an error
func TestReadInConfigMissing(t *testing.T) {
	v := viper.New()
	if _, err := ReadInConfig(v, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing config file, got nil")
	}
}

// TestLoadInvalidLogLevel tests log level validation
func TestLoadInvalidLogLevel(t *testing.T) {
	v := viper.New()
	Setup(v)
	v.Set(KeyLogLevel, "verbose")

	if _, err := Load(v); err == nil {
		t.Error("Expected error for invalid log level, got nil")
	}
}
