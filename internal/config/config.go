// Package config loads application settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the auction server.
type Config struct {
	// Server settings
	Port string // listen address, e.g. ":8080"

	// Session settings
	SessionTTL         time.Duration // lifetime of a session token
	SessionSweepPeriod time.Duration // interval of the expired-session sweeper

	// Account settings
	MinPasswordLength int // minimum accepted password length at registration

	// Bidding policy
	DefaultMinIncrement   float64 // increment applied when an auction omits one
	AllowStartingPriceBid bool    // accept a first bid equal to the starting price

	// Development helpers
	DemoSeed bool // seed a demo user and auction at startup
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                  getEnv("PORT", ":8080"),
		SessionTTL:            getEnvAsDuration("SESSION_TTL", time.Hour),
		SessionSweepPeriod:    getEnvAsDuration("SESSION_SWEEP_INTERVAL", 5*time.Minute),
		MinPasswordLength:     getEnvAsInt("MIN_PASSWORD_LENGTH", 8),
		DefaultMinIncrement:   getEnvAsFloat("DEFAULT_MIN_INCREMENT", 1.0),
		AllowStartingPriceBid: getEnvAsBool("AUCTION_ALLOW_STARTING_PRICE_BID", false),
		DemoSeed:              getEnvAsBool("AUCTION_DEMO_SEED", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.MinPasswordLength < 1 {
		return fmt.Errorf("MIN_PASSWORD_LENGTH must be at least 1, got %d", c.MinPasswordLength)
	}
	if c.DefaultMinIncrement <= 0 {
		return fmt.Errorf("DEFAULT_MIN_INCREMENT must be positive, got %g", c.DefaultMinIncrement)
	}
	return nil
}

// getEnv returns the environment value for key, or the default when unset.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt parses the environment value as an integer.
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

// getEnvAsFloat parses the environment value as a float64.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool parses the environment value as a boolean.
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses the environment value as a time.Duration.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
