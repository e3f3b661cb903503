package config

import (
	"os"
	"strings"
)

// Helper: env var with a fallback
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DBPath is the SQLite file holding the persisted collections.
func DBPath() string {
	return GetEnv("DB_PATH", "haverststudio.db")
}

// AllowedOrigins lists the frontend origins permitted by CORS.
func AllowedOrigins() []string {
	raw := GetEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	origins := strings.Split(raw, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}

// Owner credentials. The studio has a single account, configured through
// the environment rather than stored in a collection.
func OwnerEmail() string {
	return os.Getenv("STUDIO_EMAIL")
}

func OwnerPasswordHash() string {
	return os.Getenv("STUDIO_PASSWORD_HASH")
}
