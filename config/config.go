package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	GeminiAPIKey   string
	RedisURL       string // bo'sh bo'lsa faqat lokal kesh ishlatiladi
	DataPath       string
	HTTPAddr       string
	TelegramToken  string // bo'sh bo'lsa telegram delivery ishga tushmaydi
	QueryLogDBPath string
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		RedisURL:       os.Getenv("REDIS_URL"),
		TelegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		DataPath:       "data",
		HTTPAddr:       ":8080",
		QueryLogDBPath: "data/querylog.db",
	}

	if dataPath := os.Getenv("DATA_PATH"); dataPath != "" {
		config.DataPath = dataPath
	}

	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		config.HTTPAddr = addr
	}

	if dbPath := os.Getenv("QUERY_LOG_DB_PATH"); dbPath != "" {
		config.QueryLogDBPath = dbPath
	}

	// Validatsiya
	if config.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable bo'sh")
	}

	return config, nil
}
