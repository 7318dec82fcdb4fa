package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Server
	Port int `env:"PORT" envDefault:"3000"`

	// Session
	SessionSecret   string `env:"SESSION_SECRET,required"`
	SessionTTLHours int    `env:"SESSION_TTL_HOURS" envDefault:"24"`

	// Demo sign-in account created at startup when set
	SeedUserEmail    string `env:"SEED_USER_EMAIL"`
	SeedUserPassword string `env:"SEED_USER_PASSWORD"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
