package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	Env              string
	LogLevel         string
	Timezone         string
	Database         DatabaseConfig
	JWT              JWTConfig
	CORS             CORSConfig
	ExportSigningKey string
	AdminUsers       []string
	TestMode         bool
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("TIMEZONE", "UTC"),
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		ExportSigningKey: getEnv("EXPORT_SIGNING_KEY", ""),
		AdminUsers:       splitList(os.Getenv("ADMIN_USERS")),
		TestMode:         getEnv("TEST_MODE", "false") == "true",
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	items := []string{}
	if raw == "" {
		return items
	}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
