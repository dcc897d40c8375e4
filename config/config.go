package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/yeremiapane/restaurant-ledger/utils"
)

type Config struct {
	DBDriver   string
	DBSource   string
	LogLevel   string
	DBLogLevel string
}

// Load reads .env when present and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBSource:   getEnv("DB_SOURCE", "restaurant.db"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		DBLogLevel: getEnv("DB_LOG_LEVEL", "warn"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
