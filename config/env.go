package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all environment configuration
type Config struct {
	// Database
	DatabaseHost     string
	DatabasePort     string
	PostgresUser     string
	PostgresPassword string
	DatabaseName     string

	// Authentication
	JWTSecret string

	// Discord
	DiscordClientID     string
	DiscordClientSecret string

	// Google
	GoogleClientID     string
	GoogleClientSecret string

	// Object storage
	StorageEndpoint  string
	StorageBucket    string
	StorageAccessKey string
	StorageSecretKey string
	StoragePublicURL string

	// Other
	PublicDomain string
}

var (
	appConfig *Config
	onceEnv   sync.Once
)

func loadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		// Database - required
		DatabaseHost:     getEnvWithDefault("DATABASE_HOST", "localhost"),
		DatabasePort:     getEnvWithDefault("DATABASE_PORT", "5432"),
		PostgresUser:     getEnvWithDefault("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnvWithDefault("POSTGRES_PASSWORD", "postgres"),
		DatabaseName:     getEnvWithDefault("DATABASE_NAME", "postgres"),

		// JWT - required
		JWTSecret: getEnvWithDefault("JWT_SECRET", "dummyjwt"),

		// Identity providers - optional in development
		DiscordClientID:     getEnv("DISCORD_CLIENT_ID"),
		DiscordClientSecret: getEnv("DISCORD_CLIENT_SECRET"),
		GoogleClientID:      getEnv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:  getEnv("GOOGLE_CLIENT_SECRET"),

		// Object storage - required for gallery uploads
		StorageEndpoint:  getEnvWithDefault("STORAGE_ENDPOINT", "http://localhost:9000"),
		StorageBucket:    getEnvWithDefault("STORAGE_BUCKET", "fairway-gallery"),
		StorageAccessKey: getEnv("STORAGE_ACCESS_KEY"),
		StorageSecretKey: getEnv("STORAGE_SECRET_KEY"),
		StoragePublicURL: getEnvWithDefault("STORAGE_PUBLIC_URL", "http://localhost:9000/fairway-gallery"),

		PublicDomain: getEnvWithDefault("PUBLIC_DOMAIN", "localhost"),
	}
}

func Env() *Config {
	onceEnv.Do(func() {
		appConfig = loadConfig()
	})
	return appConfig
}

// Helper functions
func getEnv(key string) string {
	value := os.Getenv(key)
	if value == "" && IsProduction() {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return value
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsProduction returns true if running in production
func IsProduction() bool {
	return getEnvWithDefault("ENVIRONMENT", "development") == "production"
}

// IsDevelopment returns true if running in development
func IsDevelopment() bool {
	return !IsProduction()
}
