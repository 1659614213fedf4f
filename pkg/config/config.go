package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    string
	TokenExpiry  time.Duration
	CookieSecure bool
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	tokenExpiry := 24 * time.Hour
	if exp := os.Getenv("TOKEN_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			tokenExpiry = parsed
		}
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=taskdeck port=5432 sslmode=disable"),
		JWTSecret:    getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		TokenExpiry:  tokenExpiry,
		CookieSecure: getEnv("COOKIE_SECURE", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
