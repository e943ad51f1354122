// Package config loads CLI settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubesim"
)

// Config holds the settings shared by all commands.
type Config struct {
	// DBPath is the scramble history database. Empty means the default path.
	DBPath string `yaml:"db_path"`

	// ScrambleLength is the number of moves in a generated scramble.
	ScrambleLength int `yaml:"scramble_length" validate:"gte=0,lte=10000"`

	// Seed fixes the scramble generator when set.
	Seed *uint64 `yaml:"seed,omitempty"`

	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// Color enables colored cube output.
	Color bool `yaml:"color"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ScrambleLength: cubesim.DefaultScrambleLength,
		LogLevel:       "info",
		Color:          true,
	}
}

// DefaultPath returns the default config file path in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".cubesim", "config.yaml"), nil
}

// Load reads the config file at path. A missing file yields the defaults;
// keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	return validator.New().Struct(c)
}

// Save writes the config to path, creating the parent directory.
func (c Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
