package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	AIAPIKey            string
	GenModel            string
	MaxUploadMB         int
	MaxTokensPerChunk   int
	SmallDocTokenBudget int
	ChunkOutputTokens   int
	ChunkDelayMs        int
}

// LoadConfig loads the environment variables and return config
func LoadConfig() *Config {

	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		AIAPIKey:            getEnv("GEMINI_API_KEY", ""),
		GenModel:            getEnv("GEN_MODEL", "gemini-1.5-flash"),
		MaxUploadMB:         getEnvInt("MAX_UPLOAD_MB", 25),
		MaxTokensPerChunk:   getEnvInt("MAX_TOKENS_PER_CHUNK", 3000),
		SmallDocTokenBudget: getEnvInt("SMALL_DOC_TOKEN_BUDGET", 2500),
		ChunkOutputTokens:   getEnvInt("CHUNK_OUTPUT_TOKENS", 1500),
		ChunkDelayMs:        getEnvInt("CHUNK_DELAY_MS", 1000),
	}

	if cfg.AIAPIKey == "" {
		log.Fatal("GEMINI_API_KEY not set")
	}

	return cfg
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("WARN: %s=%q not an int, using default %d", key, v, def)
		return def
	}
	return n
}
