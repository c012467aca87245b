package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
// A missing default file is not an error; a missing explicit file is.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path != "" {
		return LoadFile(path)
	}

	if _, err := os.Stat(defaultConfigPath); err == nil {
		return LoadFile(defaultConfigPath)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return validated(&cfg)
}

// LoadFile reads configuration from the YAML file at path, overlaid by ENV.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return validated(&cfg)
}

func validated(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}
