package config

import (
	"os"
	"time"
)

// AppConfig carries everything the binaries need from the environment.
type AppConfig struct {
	HTTPAddr    string
	DatabaseDSN string

	JWTSecret string
	JWTTTL    time.Duration

	// Env switches gin/zap between development and production modes.
	Env string
}

// Load reads environment variables into AppConfig. Values missing from
// the environment fall back to local-development defaults; JWT_SECRET
// has no default and must be set.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		DatabaseDSN: getEnv("DATABASE_URL", "swippe.db"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTL:      getEnvDuration("JWT_TTL", 24*time.Hour),
		Env:         getEnv("APP_ENV", "development"),
	}
}

func (c AppConfig) IsProduction() bool { return c.Env == "production" }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
