package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string

	// Records store (required)
	DBUrl        string
	RecordsTable string
	PageSize     int

	// Shared-credential gate (required)
	BasicAuthUser     string
	BasicAuthPassword string
	BasicAuthRealm    string

	// File store (optional; CV links for storage paths fail per-row without it)
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Region          string
	S3Endpoint        string
	CVBucket          string
	SignedURLTTL      int // seconds

	// Classifier rule overrides (optional JSON file)
	RulesPath string

	// Redis (optional, rate limiting)
	RedisURL      string
	RedisPassword string

	// Rate limiting
	RateLimitWindowSeconds int
	RateLimitThreshold     int
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when no .env exists.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", ""), "/"),

		DBUrl:        getEnv("DATABASE_URL", ""),
		RecordsTable: getEnv("RECORDS_TABLE", "candidate_records"),
		PageSize:     getEnvInt("FETCH_PAGE_SIZE", 1000),

		BasicAuthUser:     getEnv("BASIC_AUTH_USER", ""),
		BasicAuthPassword: getEnv("BASIC_AUTH_PASSWORD", ""),
		BasicAuthRealm:    getEnv("BASIC_AUTH_REALM", "CV Review"),

		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Region:          getEnv("S3_REGION", "eu-west-1"),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		CVBucket:          getEnv("CV_BUCKET", ""),
		SignedURLTTL:      getEnvInt("SIGNED_URL_TTL_SECONDS", 900), // 15 minutes

		RulesPath: getEnv("CLASSIFIER_RULES_PATH", ""),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitThreshold:     getEnvInt("RATE_LIMIT_THRESHOLD", 300),
	}

	// The dashboard is useless without its store and wide open without the
	// gate; both are startup errors, not runtime surprises.
	if cfg.DBUrl == "" {
		return nil, errors.New("config: DATABASE_URL is required")
	}
	if cfg.BasicAuthUser == "" || cfg.BasicAuthPassword == "" {
		return nil, errors.New("config: BASIC_AUTH_USER and BASIC_AUTH_PASSWORD are required")
	}
	if cfg.PageSize <= 0 {
		return nil, errors.New("config: FETCH_PAGE_SIZE must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
