// Package config loads the YAML configuration shared by the binaries.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"islandgen/pkg/terrain"
)

// Config represents the main configuration.
type Config struct {
	Generation terrain.Params `yaml:"generation"`
	Viewer     ViewerConfig   `yaml:"viewer"`
	Log        LogConfig      `yaml:"log"`
	Workers    int            `yaml:"workers"` // rows generated concurrently; <= 1 is sequential
}

// ViewerConfig contains settings for the GUI viewer.
type ViewerConfig struct {
	Scale    int `yaml:"scale"` // pixels per cell
	TPS      int `yaml:"tps"`
	HUDWidth int `yaml:"hud_width"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig creates a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Generation: terrain.DefaultParams(),
		Viewer: ViewerConfig{
			Scale:    6,
			TPS:      60,
			HUDWidth: 260,
		},
		Log: LogConfig{
			Level: "info",
		},
		Workers: 1,
	}
}

// LoadConfig loads the configuration from a file. Fields missing from the file
// keep their defaults. When the file cannot be read the defaults are returned
// together with the error.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("error parsing config: %w", err)
	}
	return config, nil
}

// SaveConfig saves the configuration to a file.
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}
