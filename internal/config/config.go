// Package config loads environment-sourced configuration into an explicit
// immutable Config passed to constructors at startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the server.
type Config struct {
	// Server settings
	Port string

	// Persistence
	DatabaseURL string

	// Token settings
	JWTSecret                string
	JWTAlgorithm             string
	AccessTokenExpireMinutes int

	// Password hashing cost factor. Fixed at load time, never user-controlled.
	BcryptCost int

	// CORS allowed origins, comma-separated. Empty allows all origins,
	// which is a development convenience only.
	CORSAllowOrigins string
}

var supportedAlgorithms = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

// Load reads configuration from the environment, consulting a .env file if
// one is present, and validates it.
func Load() (*Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:                     getEnv("PORT", "8080"),
		DatabaseURL:              getEnv("DATABASE_URL", "recipe-hub.db"),
		JWTSecret:                getEnv("JWT_SECRET", ""),
		JWTAlgorithm:             getEnv("JWT_ALGORITHM", "HS256"),
		AccessTokenExpireMinutes: getEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60),
		BcryptCost:               getEnvAsInt("BCRYPT_COST", 12),
		CORSAllowOrigins:         getEnv("CORS_ALLOW_ORIGINS", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required values are present and sane.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters for HMAC security")
	}
	if !supportedAlgorithms[c.JWTAlgorithm] {
		return fmt.Errorf("JWT_ALGORITHM %q is not supported (use HS256, HS384, or HS512)", c.JWTAlgorithm)
	}
	if c.AccessTokenExpireMinutes <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %d", c.AccessTokenExpireMinutes)
	}
	if c.BcryptCost < 4 || c.BcryptCost > 14 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", c.BcryptCost)
	}
	return nil
}

// CORSOrigins returns the configured allowed origins as a slice. Empty
// entries are dropped.
func (c *Config) CORSOrigins() []string {
	if c.CORSAllowOrigins == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(c.CORSAllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// getEnv returns the environment variable or a default when unset.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt returns the environment variable parsed as an int, or the
// default when unset or unparsable.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
