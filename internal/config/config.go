package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Universe  UniverseConfig
	Cache     CacheConfig
	Scheduler SchedulerConfig
	CORS      CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// UniverseConfig holds the symbol universe configuration
type UniverseConfig struct {
	// Path to a universe YAML file. Empty means the embedded default.
	Path string
}

// CacheConfig holds summary cache configuration
type CacheConfig struct {
	TTL time.Duration
}

// SchedulerConfig holds the background refresh configuration
type SchedulerConfig struct {
	// RefreshSchedule is a cron expression for the nightly history sync.
	// Empty disables the scheduler.
	RefreshSchedule string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cacheTTLMinutes, err := getEnvInt("CACHE_TTL_MINUTES", 15)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL_MINUTES: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/put_screener.db"),
		},
		Universe: UniverseConfig{
			Path: getEnv("UNIVERSE_PATH", ""),
		},
		Cache: CacheConfig{
			TTL: time.Duration(cacheTTLMinutes) * time.Minute,
		},
		Scheduler: SchedulerConfig{
			// Default runs after US market close, server local time.
			RefreshSchedule: getEnv("REFRESH_SCHEDULE", "30 22 * * 1-5"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost")),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

// splitList splits a comma-separated value, trimming whitespace
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
