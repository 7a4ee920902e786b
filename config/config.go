package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the service's policy knobs alongside the usual
// DB/server settings. Radius bounds and the zone quota mirror what the
// client enforces in its UI; the server is the authority.
type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string

	MinRadiusMeters float64
	MaxRadiusMeters float64
	MaxZonesPerUser int

	// DeleteLockScore blocks an author from deleting a pin once its
	// endorsement score reaches this value. Zero disables the policy.
	DeleteLockScore int

	// Writes allowed per user per minute before the API answers 429.
	RateLimitPerMinute int
}

func Load() (*Config, error) {
	// .env is optional; production sets real environment variables.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBSSLMode:          getEnv("DB_SSLMODE", "disable"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		MinRadiusMeters:    getEnvFloat("MIN_RADIUS_METERS", 5),
		MaxRadiusMeters:    getEnvFloat("MAX_RADIUS_METERS", 200),
		MaxZonesPerUser:    getEnvInt("MAX_ZONES_PER_USER", 2),
		DeleteLockScore:    getEnvInt("PIN_DELETE_LOCK_SCORE", 0),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
	}

	if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("database environment variables are not configured")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not configured")
	}
	if cfg.MinRadiusMeters <= 0 || cfg.MaxRadiusMeters < cfg.MinRadiusMeters {
		return nil, fmt.Errorf("invalid watch zone radius bounds: min=%v max=%v",
			cfg.MinRadiusMeters, cfg.MaxRadiusMeters)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
