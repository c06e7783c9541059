package helper

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yishak-cs/calboost/internal/database"
)

// AppConfig is everything the server reads from the environment
type AppConfig struct {
	Port           string
	Mode           string
	AllowedOrigins []string

	Store     database.StoreConfig
	ImportURL string

	USDAAPIKey  string
	USDABaseURL string
	USDATimeout time.Duration

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	OpenAITimeout time.Duration

	CacheDriver   string
	CacheSize     int
	CacheTTL      time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MaxConcurrency int
}

// IsProduction reports whether APP_MODE asks for production logging and gin release mode
func (c AppConfig) IsProduction() bool {
	switch strings.ToLower(c.Mode) {
	case "prod", "production", "release":
		return true
	}
	return false
}

// LoadConfigFromEnv loads the application configuration from environment variables
func LoadConfigFromEnv() AppConfig {
	return AppConfig{
		Port:           getEnvOrDefault("APP_PORT", "8080"),
		Mode:           getEnvOrDefault("APP_MODE", "development"),
		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),

		Store: database.StoreConfig{
			Driver: getEnvOrDefault("FOOD_STORE_DRIVER", "sqlite"),
			DSN:    getEnvOrDefault("FOOD_STORE_DSN", "calboost.db"),
			Neo4j:  LoadNeo4jConfigFromEnv(),
		},
		ImportURL: getEnvOrDefault("FOOD_IMPORT_URL", ""),

		USDAAPIKey:  getEnvOrDefault("USDA_API_KEY", "DEMO_KEY"),
		USDABaseURL: getEnvOrDefault("USDA_BASE_URL", "https://api.nal.usda.gov/fdc/v1"),
		USDATimeout: getEnvDuration("USDA_TIMEOUT", 8*time.Second),

		OpenAIAPIKey:  getEnvOrDefault("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIModel:   getEnvOrDefault("OPENAI_MODEL", "gpt-4o"),
		OpenAITimeout: getEnvDuration("OPENAI_TIMEOUT", 60*time.Second),

		CacheDriver:   getEnvOrDefault("NUTRIENT_CACHE_DRIVER", "memory"),
		CacheSize:     getEnvInt("NUTRIENT_CACHE_SIZE", 1024),
		CacheTTL:      getEnvDuration("NUTRIENT_CACHE_TTL", 24*time.Hour),
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		MaxConcurrency: getEnvInt("RESOLVER_MAX_CONCURRENCY", 8),
	}
}

// LoadNeo4jConfigFromEnv loads Neo4j configuration from environment variables
func LoadNeo4jConfigFromEnv() database.Config {
	return database.Config{
		URI:      getEnvOrDefault("NEO4J_URI", ""),
		Username: getEnvOrDefault("NEO4J_USERNAME", "neo4j"),
		Password: getEnvOrDefault("NEO4J_PASSWORD", ""),
		Database: getEnvOrDefault("NEO4J_DATABASE", "neo4j"),
	}
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(getEnvOrDefault(key, "")); err == nil {
		return n
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnvOrDefault(key, "")); err == nil && d > 0 {
		return d
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	raw := getEnvOrDefault(key, "")
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
