package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Client ClientConfig
	Poller PollerConfig
	Server ServerConfig
}

// ClientConfig holds backend API client configuration
type ClientConfig struct {
	BaseURL        string
	Token          string
	RequestTimeout time.Duration
	CacheTTL       time.Duration
}

// PollerConfig holds processing-status poller configuration
type PollerConfig struct {
	Interval           time.Duration
	MaxAttempts        int
	ErrorBackoffFactor float64
}

// ServerConfig holds development backend configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
	DevToken        string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Client: ClientConfig{
			BaseURL:        getEnv("API_BASE_URL", "http://localhost:8080"),
			Token:          getEnv("API_TOKEN", ""),
			RequestTimeout: getEnvAsDuration("API_REQUEST_TIMEOUT", "15s"),
			CacheTTL:       getEnvAsDuration("STORY_CACHE_TTL", "5m"),
		},
		Poller: PollerConfig{
			Interval:           getEnvAsDuration("POLL_INTERVAL", "3s"),
			MaxAttempts:        getEnvAsInt("POLL_MAX_ATTEMPTS", 60),
			ErrorBackoffFactor: getEnvAsFloat("POLL_ERROR_BACKOFF_FACTOR", 2.0),
		},
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
			DevToken:        getEnv("DEV_TOKEN", ""),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Client.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if c.Poller.MaxAttempts < 1 {
		return fmt.Errorf("POLL_MAX_ATTEMPTS must be at least 1")
	}
	if c.Poller.ErrorBackoffFactor < 1 {
		return fmt.Errorf("POLL_ERROR_BACKOFF_FACTOR must be at least 1")
	}
	return nil
}

// GetServerAddr returns the development backend listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
