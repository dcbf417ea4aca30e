package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// HTTP server
	HTTPAddr string

	// Storage (optional; empty disables history)
	DatabaseURL string

	// Report cache (optional; empty disables caching)
	RedisAddr string
	CacheTTL  time.Duration

	// Local inference service
	OllamaHost  string
	OllamaModel string

	// Acquisition
	ScrapeTimeout    time.Duration
	MaxDocumentChars int

	// Attribute table override (optional YAML path; empty uses the built-in table)
	AttributesFile string

	// Catalog refresh (0 disables the background refresher)
	RefreshInterval time.Duration
	RefreshWorkers  int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:         getEnv("POLICYSCOPE_HTTP_ADDR", ":8080"),
		DatabaseURL:      getEnv("POLICYSCOPE_DB_URL", ""),
		RedisAddr:        getEnv("POLICYSCOPE_REDIS_ADDR", ""),
		CacheTTL:         getEnvDuration("POLICYSCOPE_CACHE_TTL", "6h"),
		OllamaHost:       getEnv("POLICYSCOPE_OLLAMA_HOST", "http://localhost:11434"),
		OllamaModel:      getEnv("POLICYSCOPE_OLLAMA_MODEL", "llama3.2:3b"),
		ScrapeTimeout:    getEnvDuration("POLICYSCOPE_SCRAPE_TIMEOUT", "20s"),
		MaxDocumentChars: getEnvInt("POLICYSCOPE_MAX_DOCUMENT_CHARS", 48000),
		AttributesFile:   getEnv("POLICYSCOPE_ATTRIBUTES_FILE", ""),
		RefreshInterval:  getEnvDuration("POLICYSCOPE_REFRESH_INTERVAL", "0s"),
		RefreshWorkers:   getEnvInt("POLICYSCOPE_REFRESH_WORKERS", 4),
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as an integer or returns a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration retrieves an environment variable as a duration or returns a default value.
func getEnvDuration(key string, defaultValue string) time.Duration {
	value := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(value)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
