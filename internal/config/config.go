package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL           string
	BaseURL               string // Public base URL short links are built from
	RedisURL              string
	JWTSecret             string  // Secret key for JWT token signing
	JWTTTL                int     // JWT token expiration time in hours
	AdminEmail            string  // Bootstrap admin account (created on first run)
	AdminPassword         string
	RateLimitRPS          float64 // Rate limit for general API endpoints (requests per second)
	RateLimitBurst        int     // Burst size for rate limiting
	RateLimitAuthRPS      float64 // Rate limit for auth endpoints (stricter)
	RateLimitAuthBurst    int     // Burst size for auth endpoints
	RateLimitShortenRPS   float64 // Rate limit for link creation (stricter)
	RateLimitShortenBurst int     // Burst size for link creation
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		DatabaseURL:           getEnv("DATABASE_URL", "postgres://localhost:5432/minilink?sslmode=disable"),
		BaseURL:               getEnv("BASE_URL", "http://localhost:8080"),
		RedisURL:              getEnv("REDIS_URL", "redis://localhost:6379"),
		JWTSecret:             getEnv("JWT_SECRET", ""),
		JWTTTL:                getEnvInt("JWT_TTL_HOURS", 24),
		AdminEmail:            getEnv("ADMIN_EMAIL", "admin@minilink.at"),
		AdminPassword:         getEnv("ADMIN_PASSWORD", ""),
		RateLimitRPS:          getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:        getEnvInt("RATE_LIMIT_BURST", 20),
		RateLimitAuthRPS:      getEnvFloat("RATE_LIMIT_AUTH_RPS", 5),
		RateLimitAuthBurst:    getEnvInt("RATE_LIMIT_AUTH_BURST", 10),
		RateLimitShortenRPS:   getEnvFloat("RATE_LIMIT_SHORTEN_RPS", 2),
		RateLimitShortenBurst: getEnvInt("RATE_LIMIT_SHORTEN_BURST", 5),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
