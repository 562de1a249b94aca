package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DBPath      string
	LogLevel    string
	CORSOrigins string
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:        GetEnv("PORT", "3000"),
		Env:         GetEnv("ENV", "development"),
		DBPath:      GetEnv("DB_PATH", "./data/NotesDB.db"),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		CORSOrigins: GetEnv("CORS_ORIGINS", "*"),
	}
}

// IsProduction reports whether the service runs with production defaults
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
