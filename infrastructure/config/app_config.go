package config

import (
	"os"
	"strconv"
	"time"

	"eduadmin/application"
	"eduadmin/domain/accounts"
	"eduadmin/infrastructure/apiclient"
	"eduadmin/logging"
)

// AppConfig holds application-wide system configuration.
// This is infrastructure configuration, not operator preferences.
type AppConfig struct {
	HTTPAddr    string
	HTTPLogPath string

	// ActorRole is the role the console operates as until a session
	// layer supplies one per request.
	ActorRole accounts.Role

	DefaultPerPage int

	Backend *apiclient.Config
	Search  application.SearchConfig
	Logging *logging.Config
}

// LoadAppConfigFromEnv loads complete application configuration from environment variables.
func LoadAppConfigFromEnv() *AppConfig {
	return &AppConfig{
		HTTPAddr:       getEnvWithDefault("HTTP_ADDR", ":8080"),
		HTTPLogPath:    getEnvWithDefault("HTTP_LOG_PATH", ""),
		ActorRole:      accounts.Role(getEnvWithDefault("ACTOR_ROLE", string(accounts.RoleAdmin))),
		DefaultPerPage: getEnvIntWithDefault("LIST_PER_PAGE", application.DefaultPerPage),
		Backend:        LoadBackendConfigFromEnv(),
		Search:         LoadSearchConfigFromEnv(),
		Logging:        LoadLoggingConfigFromEnv(),
	}
}

// LoadBackendConfigFromEnv loads backend API client configuration from environment variables.
func LoadBackendConfigFromEnv() *apiclient.Config {
	defaults := apiclient.DefaultConfig()
	return &apiclient.Config{
		BaseURL:    getEnvWithDefault("BACKEND_BASE_URL", defaults.BaseURL),
		Timeout:    getEnvDurationWithDefault("BACKEND_TIMEOUT", defaults.Timeout),
		RetryCount: getEnvIntWithDefault("BACKEND_RETRY_COUNT", defaults.RetryCount),
	}
}

// LoadSearchConfigFromEnv loads search overlay tuning from environment variables.
func LoadSearchConfigFromEnv() application.SearchConfig {
	defaults := application.DefaultSearchConfig()
	return application.SearchConfig{
		MinLength:  getEnvIntWithDefault("SEARCH_MIN_LENGTH", defaults.MinLength),
		DebounceMs: getEnvIntWithDefault("SEARCH_DEBOUNCE_MS", defaults.DebounceMs),
	}
}

// LoadLoggingConfigFromEnv loads logging configuration from environment variables.
func LoadLoggingConfigFromEnv() *logging.Config {
	return &logging.Config{
		Level:  getEnvWithDefault("LOG_LEVEL", "info"),
		Format: getEnvWithDefault("LOG_FORMAT", "json"),
		Output: getEnvWithDefault("LOG_OUTPUT", "stdout"),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Helper functions for environment variable parsing.
func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
