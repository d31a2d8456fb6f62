package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Locale != "en" {
		t.Errorf("Locale = %q, want %q", cfg.Locale, "en")
	}
	if cfg.SimulationDelayMS != 800 {
		t.Errorf("SimulationDelayMS = %d, want 800", cfg.SimulationDelayMS)
	}
	if cfg.LogLevel != LogLevelInfo {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, LogLevelInfo)
	}
	if cfg.LogFile != "" {
		t.Errorf("LogFile = %q, want empty", cfg.LogFile)
	}
	if cfg.Accessible {
		t.Error("Accessible should default to false")
	}
	if cfg.MessagesDir != filepath.Join(".ultratech", "messages") {
		t.Errorf("MessagesDir = %q", cfg.MessagesDir)
	}
	if cfg.Graph.Width != 48 || cfg.Graph.Height != 16 {
		t.Errorf("Graph = %dx%d, want 48x16", cfg.Graph.Width, cfg.Graph.Height)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestSimulationDelay(t *testing.T) {
	cfg := &Config{SimulationDelayMS: 250}
	if got := cfg.SimulationDelay(); got != 250*time.Millisecond {
		t.Errorf("SimulationDelay() = %v, want 250ms", got)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), "config.yaml", `
locale: fr
graph:
  width: 60
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Locale != "fr" {
		t.Errorf("Locale = %q, want %q", cfg.Locale, "fr")
	}
	if cfg.Graph.Width != 60 {
		t.Errorf("Graph.Width = %d, want 60", cfg.Graph.Width)
	}
	// Check defaults were applied
	if cfg.Graph.Height != DefaultGraphHeight {
		t.Errorf("Default graph height not applied: got %d", cfg.Graph.Height)
	}
	if cfg.SimulationDelayMS != DefaultSimulationDelayMS {
		t.Errorf("Default delay not applied: got %d", cfg.SimulationDelayMS)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("Default log level not applied: got %q", cfg.LogLevel)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown log level", "log_level: chatty\n"},
		{"negative delay", "simulation_delay_ms: -5\n"},
		{"negative graph size", "graph:\n  width: -1\n"},
		{"invalid yaml", "locale: [unclosed bracket\n  broken: {no closing brace\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := writeConfig(t, t.TempDir(), "config.yaml", tt.content)
			if _, err := Load(configPath); err == nil {
				t.Errorf("Load() should fail for %s", tt.name)
			}
		})
	}
}

func TestLoadNonexistentFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadSearchesStandardLocations(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	if _, err := Load(""); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(\"\") error = %v, want os.ErrNotExist", err)
	}

	writeConfig(t, home, filepath.Join(".ultratech", "config.yaml"), "locale: home\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Locale != "home" {
		t.Errorf("Locale = %q, want home config", cfg.Locale)
	}

	writeConfig(t, work, filepath.Join(".ultratech", "config.yml"), "locale: yml\n")
	if cfg, _ = Load(""); cfg.Locale != "yml" {
		t.Errorf("Locale = %q, want project .yml config", cfg.Locale)
	}

	writeConfig(t, work, filepath.Join(".ultratech", "config.yaml"), "locale: yaml\n")
	if cfg, _ = Load(""); cfg.Locale != "yaml" {
		t.Errorf("Locale = %q, want project .yaml config", cfg.Locale)
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("ULTRATECH_LOCALE", "fr")

	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Locale != "fr" {
		t.Errorf("Locale = %q, env override not applied to defaults", cfg.Locale)
	}

	// An explicit path must exist
	if _, err := LoadOrDefault("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadOrDefault() should fail for an explicit missing file")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := Default()

	// Set env vars using t.Setenv (auto cleanup)
	t.Setenv("ULTRATECH_LOCALE", "fr")
	t.Setenv("ULTRATECH_SIMULATION_DELAY_MS", "50")
	t.Setenv("ULTRATECH_LOG_LEVEL", "debug")
	t.Setenv("ULTRATECH_LOG_FILE", "/tmp/ultratech.log")

	cfg.ApplyEnvOverrides()

	if cfg.Locale != "fr" {
		t.Errorf("Locale = %q, want %q", cfg.Locale, "fr")
	}
	if cfg.SimulationDelayMS != 50 {
		t.Errorf("SimulationDelayMS = %d, want 50", cfg.SimulationDelayMS)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFile != "/tmp/ultratech.log" {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, "/tmp/ultratech.log")
	}
}

func TestApplyEnvOverridesInvalidDelay(t *testing.T) {
	for _, value := range []string{"invalid", "-10"} {
		cfg := Default()
		t.Setenv("ULTRATECH_SIMULATION_DELAY_MS", value)

		cfg.ApplyEnvOverrides()

		if cfg.SimulationDelayMS != DefaultSimulationDelayMS {
			t.Errorf("Invalid delay %q should be ignored, got %d", value, cfg.SimulationDelayMS)
		}
	}
}

func TestIsValidLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected bool
	}{
		{"debug", true},
		{"info", true},
		{"warn", true},
		{"error", true},
		{"", false},
		{"Info", false},
		{"trace", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := IsValidLogLevel(tt.level); got != tt.expected {
				t.Errorf("IsValidLogLevel(%q) = %v, want %v", tt.level, got, tt.expected)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ultratech", "config.yaml")

	cfg := Default()
	cfg.Locale = "fr"
	cfg.SimulationDelayMS = 1200
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Locale != "fr" || loaded.SimulationDelayMS != 1200 {
		t.Errorf("loaded = %+v, want saved values", loaded)
	}
}
