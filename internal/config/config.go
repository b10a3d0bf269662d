// Package config loads gitgrab settings from a YAML file, merging them
// over built-in defaults. A missing config file is not an error.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/NicabarNimble/go-gitgrab/internal/errors"
)

// Config holds user-tunable settings for the watch and clone commands.
type Config struct {
	PollInterval string    `yaml:"poll_interval"` // duration string, e.g. "1s"
	CloneRoot    string    `yaml:"clone_root"`    // overrides the workspace root
	MarkerFiles  []string  `yaml:"marker_files"`  // extra marker filenames
	MarkerDirs   []string  `yaml:"marker_dirs"`   // extra marker directory names
	Log          LogConfig `yaml:"log"`
}

// LogConfig configures the watch daemon's rotated log file.
type LogConfig struct {
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PollInterval: "1s",
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// Load reads the config from the default path.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config from configPath. A missing file yields the
// defaults with no error; malformed YAML yields the defaults and an
// error.
func LoadFrom(configPath string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.New("config", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.New("config", err)
	}

	if cfg.PollInterval == "" {
		cfg.PollInterval = "1s"
	}
	return cfg, nil
}

// Interval returns the parsed poll interval, falling back to one second
// when the configured value does not parse or is not positive.
func (c Config) Interval() time.Duration {
	d, err := time.ParseDuration(c.PollInterval)
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}

// Path returns the config file location, honoring XDG_CONFIG_HOME.
func Path() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "gitgrab", "config.yaml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "gitgrab", "config.yaml")
	}
	return filepath.Join(home, ".config", "gitgrab", "config.yaml")
}

// StateDir returns the directory for runtime state (lock file, logs),
// honoring XDG_STATE_HOME, creating it if needed.
func StateDir() (string, error) {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.New("state-dir", err)
		}
		base = filepath.Join(home, ".local", "state")
	}

	dir := filepath.Join(base, "gitgrab")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", errors.New("state-dir", err)
	}
	return dir, nil
}
