package config

import (
	"os"
	"time"
)

// Config holds all application configuration
type Config struct {
	Port     string
	MongoURI string

	// Admin panel credentials (single fixed identity)
	AdminEmail    string
	AdminPassword string // plain value or argon2id hash

	// Session cookie signing
	SessionSecret string
	SessionExpiry time.Duration

	// Uploaded image storage
	S3Bucket string
	S3Region string

	// Design recommendation service
	AssistantURL string

	AllowedOrigins string
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "3001"),
		MongoURI: getEnv("MONGODB_URI", ""),

		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionExpiry: getDurationEnv("SESSION_EXPIRY", 7*24*time.Hour),

		S3Bucket: getEnv("S3_BUCKET", ""),
		S3Region: getEnv("S3_REGION", "us-east-1"),

		AssistantURL: getEnv("ASSISTANT_URL", ""),

		AllowedOrigins: getEnv("ALLOWED_ORIGINS", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
