package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Dir is the project-local configuration directory.
const Dir = ".ultratech"

// Defaults
const (
	DefaultLocale            = "en"
	DefaultSimulationDelayMS = 800
	DefaultLogLevel          = "info"
	DefaultGraphWidth        = 48
	DefaultGraphHeight       = 16
)

// Log levels accepted in log_level
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config represents the ultratech configuration
type Config struct {
	Locale            string      `yaml:"locale"`
	SimulationDelayMS int         `yaml:"simulation_delay_ms"`
	LogLevel          string      `yaml:"log_level"`
	LogFile           string      `yaml:"log_file"`
	Accessible        bool        `yaml:"accessible"`
	MessagesDir       string      `yaml:"messages_dir,omitempty"`
	Graph             GraphConfig `yaml:"graph"`
}

// GraphConfig sizes the terminal graph canvas
type GraphConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Load reads config from file, checking multiple locations.
// It returns os.ErrNotExist when no explicit path is given and no file is found.
func Load(path string) (*Config, error) {
	var configPath string

	if path != "" {
		configPath = path
	} else {
		configPath = Find()
	}

	if configPath == "" {
		return nil, os.ErrNotExist
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	cfg.applyDefaults()
	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return &cfg, nil
}

// LoadOrDefault loads the config, falling back to defaults (with env
// overrides) when no config file exists.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if path == "" && os.IsNotExist(err) {
		cfg = Default()
		cfg.ApplyEnvOverrides()
		return cfg, cfg.Validate()
	}
	return nil, err
}

// Find returns the first existing config file in the standard locations.
func Find() string {
	locations := []string{
		filepath.Join(Dir, "config.yaml"),
		filepath.Join(Dir, "config.yml"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, Dir, "config.yaml"))
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}
	return ""
}

func (c *Config) applyDefaults() {
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	if c.SimulationDelayMS == 0 {
		c.SimulationDelayMS = DefaultSimulationDelayMS
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.MessagesDir == "" {
		c.MessagesDir = filepath.Join(Dir, "messages")
	}
	if c.Graph.Width == 0 {
		c.Graph.Width = DefaultGraphWidth
	}
	if c.Graph.Height == 0 {
		c.Graph.Height = DefaultGraphHeight
	}
}

// ApplyEnvOverrides applies environment variable overrides to config
func (c *Config) ApplyEnvOverrides() {
	if locale := os.Getenv("ULTRATECH_LOCALE"); locale != "" {
		c.Locale = locale
	}
	if envDelay := os.Getenv("ULTRATECH_SIMULATION_DELAY_MS"); envDelay != "" {
		if delay, err := strconv.Atoi(envDelay); err == nil && delay >= 0 {
			c.SimulationDelayMS = delay
		}
	}
	if level := os.Getenv("ULTRATECH_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	if file := os.Getenv("ULTRATECH_LOG_FILE"); file != "" {
		c.LogFile = file
	}
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	if !IsValidLogLevel(c.LogLevel) {
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel)
	}
	if c.SimulationDelayMS < 0 {
		return fmt.Errorf("simulation_delay_ms must not be negative, got %d", c.SimulationDelayMS)
	}
	if c.Graph.Width < 0 || c.Graph.Height < 0 {
		return fmt.Errorf("graph size must not be negative, got %dx%d", c.Graph.Width, c.Graph.Height)
	}
	return nil
}

// IsValidLogLevel reports whether level is a supported log level.
func IsValidLogLevel(level string) bool {
	switch level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	}
	return false
}

// SimulationDelay returns the configured delay as a duration.
func (c *Config) SimulationDelay() time.Duration {
	return time.Duration(c.SimulationDelayMS) * time.Millisecond
}

// Default returns the default configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Save writes the config as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
