package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the API server.
type Config struct {
	Port      string
	Env       string
	JWTSecret string
	JWTTTL    time.Duration
	Seed      bool
}

// LoadConfig loads environment variables into a Config struct.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:      os.Getenv("PORT"),
		Env:       os.Getenv("ENV"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    24 * time.Hour,
		Seed:      os.Getenv("SEED") == "true",
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if ttl := os.Getenv("JWT_EXPIRES_IN"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRES_IN: %w", err)
		}
		cfg.JWTTTL = parsed
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
