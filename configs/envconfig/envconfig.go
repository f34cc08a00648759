package envconfig

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadIfDev reads .env into the process environment in non-production
// environments. Missing files are not an error.
func LoadIfDev() {
	if IsProd() {
		return
	}
	_ = godotenv.Load()
}

func IsProd() bool {
	return os.Getenv("APP_ENV") == "production"
}

func String(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func Int(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func Bool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}
