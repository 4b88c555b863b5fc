package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env                   string        `env:"ENV" env-default:"local"`
	HTTPPort              int           `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout       time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"30s"`
	CORSAllowedOrigins    []string      `env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	ClientRefreshInterval time.Duration `env:"CLIENT_REFRESH_INTERVAL" env-default:"4s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}
	return &cfg, nil
}
