// Package config provides configuration management for the bank back office.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	Bank    BankConfig
	Debug   bool
	NodeEnv string
}

// BankConfig represents bank data and reporting configuration.
type BankConfig struct {
	DataRoot        string
	DBPath          string
	ReportsDir      string
	RestrictionPath string
	StatWindowYears int
}

// Load loads configuration from environment variables.
// It automatically loads .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	// Load .env file
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	windowYears, err := parseIntEnv("BANK_STAT_WINDOW_YEARS", 5)
	if err != nil {
		return nil, fmt.Errorf("invalid BANK_STAT_WINDOW_YEARS: %w", err)
	}
	if windowYears < 1 {
		return nil, fmt.Errorf("BANK_STAT_WINDOW_YEARS must be at least 1, got %d", windowYears)
	}

	config := &Config{
		Bank: BankConfig{
			DataRoot:        getEnvOrDefault("BANK_DATA_ROOT", "./bank-data"),
			DBPath:          os.Getenv("BANK_DB_PATH"),
			ReportsDir:      os.Getenv("BANK_REPORTS_DIR"),
			RestrictionPath: os.Getenv("BANK_RESTRICTION_PATH"),
			StatWindowYears: windowYears,
		},
		Debug:   os.Getenv("DEBUG") == "true",
		NodeEnv: getEnvOrDefault("NODE_ENV", "development"),
	}

	return config, nil
}

// Validate validates the configuration.
// It checks if all required fields are set.
func (c *Config) Validate(required ...[]string) error {
	var missing []string

	for _, path := range required {
		if len(path) == 0 {
			continue
		}

		var value string
		switch path[0] {
		case "bank":
			if len(path) < 2 {
				continue
			}
			switch path[1] {
			case "dataRoot":
				value = c.Bank.DataRoot
			case "dbPath":
				value = c.Bank.DBPath
			case "reportsDir":
				value = c.Bank.ReportsDir
			case "restrictionPath":
				value = c.Bank.RestrictionPath
			case "statWindowYears":
				if c.Bank.StatWindowYears == 0 {
					value = ""
				} else {
					value = "set"
				}
			}
		}

		if value == "" {
			missing = append(missing, joinPath(path))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v\nPlease check your .env file or environment variables", missing)
	}

	return nil
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseIntEnv parses an int from an environment variable.
// Returns defaultValue if the environment variable is not set.
func parseIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %s", key, value)
	}

	return parsed, nil
}

// joinPath joins a path slice into a dot-separated string.
func joinPath(path []string) string {
	result := ""
	for i, p := range path {
		if i > 0 {
			result += "."
		}
		result += p
	}
	return result
}
