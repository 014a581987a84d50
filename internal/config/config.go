package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Chat     ChatConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string // dev | test | preview | main
	LogFilePath        string
	CorsAllowedOrigins string
	DemoJWTSecret      string // empty disables auth on the demo projections
}

type DatabaseConfig struct {
	// Per-deployment connection strings, selected by AppConfig.Environment.
	Dev     string
	Test    string
	Preview string
	Main    string
}

type APIKeys struct {
	GoogleGemini string
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaEmbedModel  string
	LLMProvider       string // "ollama" or "gemini"
	LLMModel          string // e.g. "llama3", "gemini-1.5-flash"
}

type ChatConfig struct {
	RecentHistoryLength int    // sliding window applied when loading history
	IngestTopicName     string // pub/sub topic for ingestion events
	ChatTopicName       string // pub/sub topic for completed exchanges
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8000"),
			Environment:        getEnv("APP_ENV", "dev"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			DemoJWTSecret:      getEnv("DEMO_JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Dev:     getEnv("DATABASE_URL_DEV", ""),
			Test:    getEnv("DATABASE_URL_TEST", ""),
			Preview: getEnv("DATABASE_URL_PREVIEW", ""),
			Main:    getEnv("DATABASE_URL_MAIN", ""),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaEmbedModel:  getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:          getEnv("LLM_MODEL", "llama3"),
		},
		Chat: ChatConfig{
			RecentHistoryLength: getEnvAsInt("RECENT_HISTORY_LENGTH", 50),
			IngestTopicName:     getEnv("INGEST_TOPIC_NAME", "document.ingested"),
			ChatTopicName:       getEnv("CHAT_TOPIC_NAME", "chat.exchange.completed"),
		},
	}
}

// DatabaseURL returns the connection string for the configured environment.
// An unknown environment falls back to dev.
func (c *Config) DatabaseURL() string {
	switch strings.ToLower(c.App.Environment) {
	case "test":
		return c.Database.Test
	case "preview":
		return c.Database.Preview
	case "main", "production":
		return c.Database.Main
	default:
		return c.Database.Dev
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
