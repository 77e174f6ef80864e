// internal/infrastructure/config/config.go
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Logging
	LogLevel string

	// StorePath is the directory holding the three JSON record stores.
	StorePath string

	// AuditDBPath is the sqlite file backing the audit trail. Empty
	// disables auditing.
	AuditDBPath string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:  getEnv("APP_VERSION", "1.0.0"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		StorePath:   getEnv("STORE_PATH", "./store"),
		AuditDBPath: getEnv("AUDIT_DB_PATH", "hotel_audit.db"),
	}

	return config, nil
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
