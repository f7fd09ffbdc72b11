package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode string
	Port    string
	API     APIConfig
	Session SessionConfig
}

// APIConfig holds the remote SPECS Nexus API configuration
type APIConfig struct {
	// BaseURL is the origin of the remote API. The original client had
	// http://localhost:8000 hard-coded; here it is configurable.
	BaseURL string
}

// SessionConfig holds session cookie configuration
type SessionConfig struct {
	Secret       string
	CookieSecure bool
	SameSite     string
	Domain       string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode: appMode,
		Port:    getEnv("PORT", "3000"),
		API: APIConfig{
			BaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8000"), "/"),
		},
		Session: loadSessionConfig(appMode),
	}

	AppConfig = config
	return config, nil
}

// loadSessionConfig loads session cookie config based on mode
func loadSessionConfig(mode string) SessionConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return SessionConfig{
		Secret:       getEnv(prefix+"SESSION_SECRET", "default_session_secret"),
		CookieSecure: secure,
		SameSite:     getEnv("COOKIE_SAMESITE", "lax"),
		Domain:       getEnv("COOKIE_DOMAIN", ""),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}
