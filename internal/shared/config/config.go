package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds application configuration
type Config struct {
	Version           string        `env:"VERSION" envDefault:"1.1.0"`
	Port              int           `env:"PORT" envDefault:"8000"`
	Environment       string        `env:"ENVIRONMENT" envDefault:"prod"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	SentryDSN         string        `env:"SENTRY_DSN"`
	DatabaseURL       string        `env:"DATABASE_URL"`
	DBConnectAttempts int           `env:"DB_CONNECT_ATTEMPTS" envDefault:"10"`
	JWTSecret         string        `env:"SECRET_KEY" envDefault:"una_clave_muy_secreta_123"`
	JWTTTL            time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"30m"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsEnvProd() bool {
	if c.Environment == "prod" && c.SentryDSN != "" {
		return true
	}
	return false
}
