package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	SessionEventsTopic string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	Strategy       string // "keyword" or "llm"
	LLMProvider    string // "ollama" or "gemini"
	OllamaBaseURL  string
	GeminiAPIKey   string
	LLMModel       string
	Temperature    float64
	TimeoutSeconds int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			SessionEventsTopic: getEnv("SESSION_EVENTS_TOPIC_NAME", "SESSION_EVENTS"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			Strategy:       getEnv("CLASSIFIER_STRATEGY", "keyword"),
			LLMProvider:    getEnv("LLM_PROVIDER", "ollama"),
			OllamaBaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			GeminiAPIKey:   getEnv("GOOGLE_API_KEY", ""),
			LLMModel:       getEnv("LLM_MODEL", "llama3"),
			Temperature:    getEnvAsFloat("LLM_TEMPERATURE", 0.2),
			TimeoutSeconds: getEnvAsInt("LLM_TIMEOUT_SECONDS", 60),
		},
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

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
