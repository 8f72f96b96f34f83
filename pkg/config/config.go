package config

import (
	"os"
	"strconv"
)

type GlobalConfig struct {
	AccessTokenTTL int // in minutes
	ServerPort     string
	LogLevel       string
}

func LoadGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		AccessTokenTTL: GetIntEnvOrDefault("ACCESS_TOKEN_TTL", 60), // in minutes
		ServerPort:     GetEnvOrDefault("SERVER_PORT", "8080"),
		LogLevel:       GetEnvOrDefault("LOG_LEVEL", "info"),
	}
}

// GetEnv retrieves the value of the environment variable named by the key.
func GetEnv(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	} else {
		panic("critical config missing: " + key)
	}
}

// GetEnvOrDefault retrieves the value or returns default if not set.
func GetEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

// GetIntEnvOrDefault parses an integer variable, falling back on absence or parse failure.
func GetIntEnvOrDefault(key string, defaultValue int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetBoolEnvOrDefault parses a boolean variable, falling back on absence or parse failure.
func GetBoolEnvOrDefault(key string, defaultValue bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
