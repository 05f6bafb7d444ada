package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	pathEnv     = "CONFIG_PATH"
	defaultPath = "./config.yaml"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config
	if err := read(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// LoadAuth reads only the auth section from the same sources as Load.
// Tools that mint tokens use it so they do not need database settings.
func LoadAuth() (*AuthConfig, error) {
	var partial struct {
		Auth AuthConfig `yaml:"auth"`
	}
	if err := read(&partial); err != nil {
		return nil, err
	}

	if len(partial.Auth.JWTSecret) < minJWTSecretLen {
		return nil, fmt.Errorf("config: validate: auth.jwt_secret must be at least %d characters", minJWTSecretLen)
	}

	return &partial.Auth, nil
}

func read(dst any) error {
	path := os.Getenv(pathEnv)
	explicitPath := path != ""
	if !explicitPath {
		path = defaultPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, dst); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicitPath:
		return fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(dst); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}
