// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	History  HistoryConfig `yaml:"history"`
	UI       UIConfig      `yaml:"ui"`
	Bindings []Binding     `yaml:"bindings,omitempty"`
}

// HistoryConfig holds history persistence settings.
type HistoryConfig struct {
	// File is the history file path. Empty means the default location
	// next to the config file.
	File string `yaml:"file,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	Prompt string `yaml:"prompt,omitempty"`
	// Echo is "normal", "password", or "none".
	Echo string `yaml:"echo,omitempty"`
	// Bell rings the terminal bell on failed completion or exhausted
	// search.
	Bell bool `yaml:"bell"`
}

// Binding maps one key-chord to an editor action by name. Bindings are
// applied in file order over the defaults; a later entry for the same
// key overrides an earlier one.
type Binding struct {
	Key    string `yaml:"key"`
	Action string `yaml:"action"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Prompt: "> ",
			Echo:   "normal",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "quill")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// HistoryPath returns the configured history file path, falling back
// to the default location in the config directory.
func (c *Config) HistoryPath() (string, error) {
	if c.History.File != "" {
		return c.History.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
