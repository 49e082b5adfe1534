package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Cache    CacheConfig
	App      AppConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

type DatabaseConfig struct {
	URL      string
	MaxConns int
	MinConns int
	// Offline disables all database access: reads return fallback values,
	// writes fail with a descriptive error. Set explicitly via
	// SITE_OFFLINE_MODE, or derived when DATABASE_URL is missing or still
	// holds the "fallback" placeholder.
	Offline bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	CredentialsPath string
}

type StorageConfig struct {
	Bucket        string
	Region        string
	PublicBaseURL string
}

type CacheConfig struct {
	WarmSchedule string
}

type AppConfig struct {
	Environment string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dbURL := getEnv("DATABASE_URL", "")

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: splitList(getEnv("CORS_ORIGINS", "")),
		},
		Database: DatabaseConfig{
			URL:      dbURL,
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns: getEnvAsInt("DB_MIN_CONNS", 2),
			Offline:  getEnvAsBool("SITE_OFFLINE_MODE", false) || isPlaceholderDSN(dbURL),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		},
		Storage: StorageConfig{
			Bucket:        getEnv("S3_BUCKET", ""),
			Region:        getEnv("S3_REGION", "af-south-1"),
			PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),
		},
		Cache: CacheConfig{
			WarmSchedule: getEnv("CACHE_WARM_SCHEDULE", ""),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	return nil
}

// isPlaceholderDSN catches the "fallback" placeholder some deployments leave
// in DATABASE_URL during static builds. SITE_OFFLINE_MODE is the explicit
// switch; this is a compatibility net.
func isPlaceholderDSN(url string) bool {
	return url == "" || strings.Contains(url, "fallback")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
