package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// GitHub publishing account (repository owner + API token)
	GitHubToken string
	GitHubOwner string
	// Gemini Configuration (CV screening endpoint)
	GeminiAPIKey string
	GeminiModel  string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitPublishThreshold int
	RateLimitGlobalThreshold  int
	// Upload Configuration
	MaxUploadBytes int64
	UploadTmpDir   string
	// Publishing behaviour
	DeleteOrphanRepos bool // Compensating delete of half-created repositories on abort
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// GitHub publishing account
		GitHubToken: getEnv("GITHUB_TOKEN", ""),
		GitHubOwner: getEnv("GITHUB_OWNER", ""),
		// Gemini Configuration
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),   // 1 minute window
		RateLimitPublishThreshold: getEnvInt("RATE_LIMIT_PUBLISH_THRESHOLD", 5), // 5 site generations per window
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		// Upload Configuration
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 5*1024*1024)), // 5 MiB per file
		UploadTmpDir:   getEnv("UPLOAD_TMP_DIR", os.TempDir()),
		// Publishing behaviour
		DeleteOrphanRepos: getEnvBool("PUBLISH_DELETE_ORPHANS", false),
	}

	// Basic validation to avoid confusing failures later
	if cfg.GitHubToken == "" || cfg.GitHubOwner == "" {
		log.Println("WARNING: GITHUB_TOKEN/GITHUB_OWNER is missing. Portfolio publishing will fail.")
	}
	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Publication log and deduplication are disabled.")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY not configured. CV screening endpoint will be unavailable.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
