package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Config holds all configuration for the application
type Config struct {
	Environment   string
	IsProduction  bool
	IsDevelopment bool

	// Logging
	LogLevel string
	LogDir   string

	// Seed data
	SeedHTMLPath string

	// Display settings
	HideOptionalDirections bool
	ListTextColor          string
	ListBackgroundColor    string

	// Shell
	CommandPrefix string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Environment:         getEnv("ENVIRONMENT", "development"),
		LogLevel:            strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogDir:              getEnv("LOG_DIR", ""),
		SeedHTMLPath:        getEnv("COOKBOOK_SEED_HTML", ""),
		ListTextColor:       getEnv("COOKBOOK_TEXT_COLOR", "#7677E7"),
		ListBackgroundColor: getEnv("COOKBOOK_BACKGROUND_COLOR", "#E4EBFA"),
		CommandPrefix:       getEnv("COMMAND_PREFIX", ""),
	}

	// Derived properties
	cfg.IsProduction = cfg.Environment == "production"
	cfg.IsDevelopment = !cfg.IsProduction

	var err error
	cfg.HideOptionalDirections, err = strconv.ParseBool(getEnv("COOKBOOK_HIDE_OPTIONAL", "false"))
	if err != nil {
		return nil, fmt.Errorf("COOKBOOK_HIDE_OPTIONAL must be a boolean: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configured values
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel)
	}

	if !hexColorRegex.MatchString(c.ListTextColor) {
		return fmt.Errorf("COOKBOOK_TEXT_COLOR %q is not a hex color", c.ListTextColor)
	}
	if !hexColorRegex.MatchString(c.ListBackgroundColor) {
		return fmt.Errorf("COOKBOOK_BACKGROUND_COLOR %q is not a hex color", c.ListBackgroundColor)
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
