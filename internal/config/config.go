package config

import (
	"os"
	"strconv"

	"zscorecalc/domain/zscore"
	"zscorecalc/internal"
	"zscorecalc/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig
	Report  ReportConfig
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level internal.LogLevel
}

// ReportConfig holds report defaults. Window width and sub-range bounds are
// fixed in domain/zscore and deliberately absent here.
type ReportConfig struct {
	DefaultThreshold string
	Summary          bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Logging: *loadLoggingConfig(),
		Report:  *loadReportConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level: internal.ParseLogLevel(getEnvOrDefault("LOG_LEVEL", "INFO")),
	}
}

func loadReportConfig() *ReportConfig {
	return &ReportConfig{
		DefaultThreshold: getEnvOrDefault("ZSCORE_THRESHOLD", zscore.DefaultThresholdText),
		Summary:          getEnvBoolOrDefault("ZSCORE_SUMMARY", false),
	}
}

func validateConfig(config *Config) error {
	if _, err := strconv.ParseFloat(config.Report.DefaultThreshold, 64); err != nil {
		return errors.ConfigInvalid("ZSCORE_THRESHOLD must be a number, got " + strconv.Quote(config.Report.DefaultThreshold))
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
