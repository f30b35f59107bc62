package config

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	DatabaseURL string `env:"DATABASE_URL"`

	PSQLHost     string `env:"PSQL_HOST" envDefault:"localhost"`
	PSQLPort     string `env:"PSQL_PORT" envDefault:"5432"`
	PSQLUser     string `env:"PSQL_USER" envDefault:"postgres"`
	PSQLPassword string `env:"PSQL_PASSWORD" envDefault:"postgres"`
	PSQLDBName   string `env:"PSQL_DB_NAME" envDefault:"foodfund"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	// BudgetSumTolerance is how far the three budget percentages may sum away from 100.
	BudgetSumTolerance float64 `env:"BUDGET_SUM_TOLERANCE" envDefault:"0.01"`

	// CoverImageCheck enables the S3 lookup of coverImageFileKey on create.
	CoverImageCheck bool `env:"COVER_IMAGE_CHECK" envDefault:"false"`
}

// Load reads the configuration from the environment. When DATABASE_URL is
// unset it is assembled from the PSQL_* variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DatabaseURL == "" {
		u := &url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(cfg.PSQLUser, cfg.PSQLPassword),
			Host:   cfg.PSQLHost + ":" + cfg.PSQLPort,
			Path:   cfg.PSQLDBName,
		}
		q := u.Query()
		q.Set("sslmode", "disable")
		u.RawQuery = q.Encode()
		cfg.DatabaseURL = u.String()
	}

	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
