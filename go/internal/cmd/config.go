package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/mcdev12/pelada/go/internal/teamdraw"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Draw struct {
		MinPlayers  int `yaml:"min_players"`
		MaxAttempts int `yaml:"max_attempts"`
	} `yaml:"draw"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Events struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"events"`
	Gateway struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"gateway"`
}

func defaultConfig() *Config {
	var c Config
	c.Draw.MinPlayers = teamdraw.MinPlayers
	c.Draw.MaxAttempts = teamdraw.DefaultMaxAttempts
	c.Log.Level = "info"
	return &c
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// loadConfig reads the YAML file at path over the defaults. A missing file
// leaves the defaults in place.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.Draw.MinPlayers <= 0 {
		return nil, fmt.Errorf("draw.min_players must be positive, got %d", config.Draw.MinPlayers)
	}
	if config.Draw.MaxAttempts <= 0 {
		return nil, fmt.Errorf("draw.max_attempts must be positive, got %d", config.Draw.MaxAttempts)
	}
	if _, err := zerolog.ParseLevel(config.Log.Level); err != nil {
		return nil, fmt.Errorf("invalid log.level %q: %w", config.Log.Level, err)
	}

	return config, nil
}
