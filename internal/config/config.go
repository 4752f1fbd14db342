package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DBHost string
	DBUser string
	DBPass string
	DBName string
	DBPort string

	RedisURL string

	// AuthMode selects the token transport: "bearer" (JWT) or "session"
	// (encrypted cookie).
	AuthMode      string
	JWTSecret     string
	SessionSecret string
	TokenTTL      time.Duration

	MeiliSearchHost string
	MeiliMasterKey  string

	LoginThrottle time.Duration

	SuperAdminUsername string
	SuperAdminEmail    string
	SuperAdminPassword string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DBHost: getEnv("DB_HOST", "localhost"),
		DBUser: getEnv("DB_USER", "postgres"),
		DBPass: os.Getenv("DB_PASS"),
		DBName: getEnv("DB_NAME", "placement_portal"),
		DBPort: getEnv("DB_PORT", "5432"),

		RedisURL: os.Getenv("REDIS_URL"),

		AuthMode:      getEnv("AUTH_MODE", "bearer"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		SessionSecret: os.Getenv("SESSION_SECRET"),

		MeiliSearchHost: os.Getenv("MEILISEARCH_HOST"),
		MeiliMasterKey:  os.Getenv("MEILI_MASTER_KEY"),

		SuperAdminUsername: os.Getenv("SUPER_ADMIN_USERNAME"),
		SuperAdminEmail:    os.Getenv("SUPER_ADMIN_EMAIL"),
		SuperAdminPassword: os.Getenv("SUPER_ADMIN_PASSWORD"),
	}

	if cfg.AuthMode != "bearer" && cfg.AuthMode != "session" {
		return nil, fmt.Errorf("invalid AUTH_MODE %q: must be bearer or session", cfg.AuthMode)
	}

	var err error
	cfg.TokenTTL, err = time.ParseDuration(getEnv("TOKEN_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	cfg.LoginThrottle, err = time.ParseDuration(getEnv("LOGIN_THROTTLE", "2s"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_THROTTLE: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
