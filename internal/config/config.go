package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gatherly/gatherly/internal/helpers"
)

type Config struct {
	Port          string
	MongoDBURI    string
	MongoDBName   string
	JWTSecret     string
	BcryptCost    int
	GoogleJWKSURL string
	Environment   string
	LogLevel      string
}

func LoadConfig() (*Config, error) {
	cost, err := strconv.Atoi(getEnvWithDefault("BCRYPT_COST", "10"))
	if err != nil {
		return nil, fmt.Errorf("BCRYPT_COST must be an integer: %v", err)
	}

	cfg := &Config{
		Port:          getEnvWithDefault("PORT", "8080"),
		MongoDBURI:    os.Getenv("MONGODB_URI"),
		MongoDBName:   getEnvWithDefault("MONGODB_DB", "gatherly"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		BcryptCost:    cost,
		GoogleJWKSURL: getEnvWithDefault("GOOGLE_JWKS_URL", helpers.DefaultGoogleJWKSURL),
		Environment:   getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:      getEnvWithDefault("LOG_LEVEL", "info"),
	}

	// Validate required fields. The signing secret in particular has no
	// default: a process without one must not come up.
	if cfg.MongoDBURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
