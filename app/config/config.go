package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the server and CLI.
type Config struct {
	Addr      string
	DBPath    string
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads configuration from the environment, picking up a .env file if
// one is present. Missing values fall back to development defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:      getenv("INKWELL_ADDR", ":8080"),
		DBPath:    getenv("INKWELL_DB_PATH", "data/badger"),
		JWTSecret: getenv("INKWELL_JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:  getDuration("INKWELL_TOKEN_TTL", 24*time.Hour),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
