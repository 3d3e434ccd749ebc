package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Suffix providers
const (
	SuffixProviderPSL  = "psl"
	SuffixProviderXNet = "xnet"
)

// Config holds all configuration for the application
type Config struct {
	App    AppConfig
	Suffix SuffixConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	LogLevel     string
	BatchWorkers int // goroutines used to validate a batch
	MaxBatchSize int // inputs accepted per import
}

// SuffixConfig selects the public suffix data used for root domain extraction
type SuffixConfig struct {
	Provider      string
	ListFile      string // optional public_suffix_list.dat overriding the embedded list
	IgnorePrivate bool
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		App:    LoadAppConfig(),
		Suffix: LoadSuffixConfig(),
	}
}

// LoadAppConfig loads application-specific configuration
func LoadAppConfig() AppConfig {
	return AppConfig{
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		BatchWorkers: getEnvAsInt("BATCH_WORKERS", 4),
		MaxBatchSize: getEnvAsInt("MAX_BATCH_SIZE", 100000),
	}
}

// LoadSuffixConfig loads public suffix configuration
func LoadSuffixConfig() SuffixConfig {
	return SuffixConfig{
		Provider:      strings.ToLower(getEnv("SUFFIX_PROVIDER", SuffixProviderPSL)),
		ListFile:      getEnv("SUFFIX_LIST_FILE", ""),
		IgnorePrivate: getEnvAsBool("SUFFIX_IGNORE_PRIVATE", false),
	}
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if err := c.App.ValidateAppConfig(); err != nil {
		return err
	}

	if err := c.Suffix.ValidateSuffixConfig(); err != nil {
		return err
	}

	return nil
}

// ValidateAppConfig validates application-specific configuration
func (c *AppConfig) ValidateAppConfig() error {
	validations := []struct {
		field     string
		value     int
		min, max  int
		fieldName string
	}{
		{"BATCH_WORKERS", c.BatchWorkers, 1, 256, "Batch workers"},
		{"MAX_BATCH_SIZE", c.MaxBatchSize, 1, 1000000, "Max batch size"},
	}

	for _, v := range validations {
		if err := validateRange(v.field, v.value, v.min, v.max, v.fieldName); err != nil {
			return err
		}
	}

	if err := validateLogLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// ValidateSuffixConfig validates public suffix configuration
func (c *SuffixConfig) ValidateSuffixConfig() error {
	switch c.Provider {
	case SuffixProviderPSL:
	case SuffixProviderXNet:
		if c.ListFile != "" {
			return &ConfigError{
				Field:   "SUFFIX_LIST_FILE",
				Message: fmt.Sprintf("SUFFIX_LIST_FILE is only supported with SUFFIX_PROVIDER=%s", SuffixProviderPSL),
			}
		}
		if c.IgnorePrivate {
			return &ConfigError{
				Field:   "SUFFIX_IGNORE_PRIVATE",
				Message: fmt.Sprintf("SUFFIX_IGNORE_PRIVATE is only supported with SUFFIX_PROVIDER=%s", SuffixProviderPSL),
			}
		}
	default:
		return &ConfigError{
			Field:   "SUFFIX_PROVIDER",
			Message: fmt.Sprintf("Invalid suffix provider '%s'. Valid providers are: %s, %s", c.Provider, SuffixProviderPSL, SuffixProviderXNet),
		}
	}
	return nil
}

// validateRange validates that a value is within the specified range
func validateRange(field string, value, min, max int, fieldName string) error {
	if value < min || value > max {
		return &ConfigError{
			Field:   field,
			Message: fmt.Sprintf("%s must be between %d and %d", fieldName, min, max),
		}
	}
	return nil
}

// validateLogLevel validates that the log level is valid
func validateLogLevel(logLevel string) error {
	validLevels := []string{"debug", "info", "warning", "warn", "error", "fatal"}
	logLevelLower := strings.ToLower(logLevel)

	for _, valid := range validLevels {
		if logLevelLower == valid {
			return nil
		}
	}

	return &ConfigError{
		Field:   "LOG_LEVEL",
		Message: fmt.Sprintf("Invalid log level '%s'. Valid levels are: %s", logLevel, strings.Join(validLevels, ", ")),
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
