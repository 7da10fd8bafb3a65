package config

import (
	"log"
	"os"

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
}

type DatabaseConfig struct {
	URL  string
	Name string
}

type AIConfig struct {
	Provider      string // "openai" or "ollama"
	Model         string
	APIKey        string
	BaseURL       string // provider endpoint override, mainly for openai-compatible hosts
	OllamaBaseURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			URL:  getEnv("MONGO_URL", "mongodb://localhost:27017"),
			Name: getEnv("DB_NAME", "thrapy"),
		},
		Ai: AIConfig{
			Provider:      getEnv("LLM_PROVIDER", "openai"),
			Model:         getEnv("LLM_MODEL", "gpt-4o-mini"),
			APIKey:        getEnv("LLM_API_KEY", ""),
			BaseURL:       getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
