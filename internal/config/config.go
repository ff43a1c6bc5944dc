// Package config provides configuration for the support center service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// LLM oracle settings
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
	LLMTimeout time.Duration

	// Embedding oracle settings
	EmbeddingModel   string
	EmbeddingTimeout time.Duration

	// Embedding cache directory
	CacheDir string

	// History window submitted to the oracle per turn
	HistoryLimit int

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		HTTPPort:         getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:      getEnv("DATABASE_URL", "file:unidesk.db?cache=shared&mode=rwc"),
		LLMBaseURL:       getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMAPIKey:        getEnv("LLM_API_KEY", ""),
		LLMModel:         getEnv("LLM_MODEL", "gpt-4o"),
		LLMTimeout:       time.Duration(getEnvInt("LLM_TIMEOUT_MS", 60000)) * time.Millisecond,
		EmbeddingModel:   getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
		EmbeddingTimeout: time.Duration(getEnvInt("EMBEDDING_TIMEOUT_MS", 30000)) * time.Millisecond,
		CacheDir:         getEnv("CACHE_DIR", os.TempDir()),
		HistoryLimit:     getEnvInt("HISTORY_LIMIT", 50),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
