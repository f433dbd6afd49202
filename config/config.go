package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds process configuration read from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	Env         string
}

// Load reads configuration from the environment, loading a .env file
// first if one is present. Missing required variables are fatal.
func Load() *Config {
	// .env is optional; real environment variables always win.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "5001"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Env:         getEnv("APP_ENV", "production"),
	}

	if cfg.DatabaseURL == "" || cfg.JWTSecret == "" {
		log.Fatal("Missing required environment variables: DATABASE_URL or JWT_SECRET")
	}

	return cfg
}

// Development reports whether the process runs in development mode,
// which enables detailed error bodies on 500 responses.
func (c *Config) Development() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
