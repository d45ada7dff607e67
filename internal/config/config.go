package config

import (
	"os"
	"strconv"

	"goattrition/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data      DataConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Profiling ProfilingConfig
}

// DataConfig holds dataset settings
type DataConfig struct {
	// File is the tabular source (CSV or XLSX). Empty means demo mode:
	// the server generates a synthetic employee dataset instead.
	File string
	// AttritionField names the two-valued attrition label column
	AttritionField string
	// PreviewRows caps the dataset preview size
	PreviewRows int
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds optional Postgres settings for saved filters
type DatabaseConfig struct {
	URL string
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Data: DataConfig{
			File:           getEnvOrDefault("DATA_FILE", ""),
			AttritionField: getEnvOrDefault("ATTRITION_FIELD", "Attrition"),
			PreviewRows:    getEnvIntOrDefault("PREVIEW_ROWS", 5),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Profiling: ProfilingConfig{
			Port:    getEnvOrDefault("PPROF_PORT", "6060"),
			Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.AttritionField == "" {
		return errors.ConfigInvalid("ATTRITION_FIELD cannot be empty")
	}
	if config.Data.PreviewRows < 0 {
		return errors.ConfigInvalid("PREVIEW_ROWS cannot be negative")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT cannot be empty")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
