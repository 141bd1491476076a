package config

import (
	"errors"
	"os"
	"time"
)

// TokenTTL is the fixed lifetime of every issued token.
const TokenTTL = time.Hour

type TokenConfig struct {
	Issuer   string
	Audience string
	Secret   string
}

type Config struct {
	// DatabaseURL selects postgres when set; DatabasePath falls back to
	// a local sqlite file otherwise.
	DatabaseURL  string
	DatabasePath string
	Port         string
	Environment  string
	Token        TokenConfig
}

// Load reads the process configuration from the environment once at
// start. The result is read-only afterwards.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabasePath: getEnv("DATABASE_PATH", "database.db"),
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("APP_ENV", "development"),
		Token: TokenConfig{
			Issuer:   os.Getenv("JWT_ISSUER"),
			Audience: os.Getenv("JWT_AUDIENCE"),
			Secret:   os.Getenv("JWT_SECRET"),
		},
	}

	if cfg.Token.Secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	if cfg.Token.Issuer == "" || cfg.Token.Audience == "" {
		return nil, errors.New("JWT_ISSUER and JWT_AUDIENCE must be set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
