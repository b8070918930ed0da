// Package config loads the dirq configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents ~/.dirq/config.yaml.
type Config struct {
	Database string `yaml:"database,omitempty"`
	BaseDN   string `yaml:"base-dn,omitempty"`
	Output   string `yaml:"output,omitempty"`
	LogLevel string `yaml:"log-level,omitempty"`
}

// Defaults used when neither flags, environment nor file set a value.
const (
	DefaultDatabase = "dirq.sqlite"
	DefaultBaseDN   = "DC=example,DC=com"
	DefaultOutput   = "table"
)

// Dir returns the path to ~/.dirq/.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dirq")
}

// Path returns the config file to read: DIRQ_CONFIG when set, otherwise
// ~/.dirq/config.yaml.
func Path() string {
	if p := os.Getenv("DIRQ_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the config at path. A missing file yields an empty Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// Keys lists the settings accepted by Set, in file order.
var Keys = []string{"database", "base-dn", "output", "log-level"}

// Set assigns the setting named key and validates the result.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "database":
		next.Database = value
	case "base-dn":
		next.BaseDN = value
	case "output":
		next.Output = value
	case "log-level":
		next.LogLevel = value
	default:
		return fmt.Errorf("unknown config key %q: use one of %s", key, strings.Join(Keys, ", "))
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Output {
	case "", "table", "json":
	default:
		return fmt.Errorf("unsupported output format %q: use 'table' or 'json'", c.Output)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level %q", c.LogLevel)
	}
	return nil
}
