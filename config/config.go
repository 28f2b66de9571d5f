// Package config centralizes environment-driven configuration for the
// keyword discovery services.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings. Zero values mean "disabled"
// for optional integrations (Kafka, S3, Redis, external APIs).
type Config struct {
	// HTTP server
	Port string

	// Business profile
	BrandURL         string
	CompetitorURLs   []string
	CompetitorFeeds  []string
	BusinessType     string
	Industry         string
	TargetLocations  []string
	NegativeKeywords []string

	// Pipeline tuning
	MinSearchVolume int
	MaxCompetition  float64
	MinRelevance    float64

	// Source credentials and inputs
	CohereAPIKey     string
	CohereModel      string
	WordstreamAPIKey string
	PlannerCSVPath   string

	// Redis suggestion cache
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Kafka publishing
	KafkaBrokers []string
	KafkaTopic   string

	// S3 report archive
	S3Bucket       string
	S3Region       string
	S3Profile      string
	S3Prefix       string
	S3UsePathStyle bool
}

// Load reads configuration from the environment. A .env file is loaded if
// present but its absence is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8080"),

		BrandURL:         getEnv("BRAND_URL", ""),
		CompetitorURLs:   splitList(os.Getenv("COMPETITOR_URLS")),
		CompetitorFeeds:  splitList(os.Getenv("COMPETITOR_FEEDS")),
		BusinessType:     getEnv("BUSINESS_TYPE", "general"),
		Industry:         getEnv("INDUSTRY", ""),
		TargetLocations:  splitList(os.Getenv("TARGET_LOCATIONS")),
		NegativeKeywords: splitList(os.Getenv("NEGATIVE_KEYWORDS")),

		MinSearchVolume: getEnvInt("MIN_SEARCH_VOLUME", 500),
		MaxCompetition:  getEnvFloat("MAX_COMPETITION", 0.8),
		MinRelevance:    getEnvFloat("MIN_RELEVANCE", 0.4),

		CohereAPIKey:     getEnv("COHERE_API_KEY", ""),
		CohereModel:      getEnv("COHERE_MODEL", ""),
		WordstreamAPIKey: getEnv("WORDSTREAM_API_KEY", ""),
		PlannerCSVPath:   getEnv("PLANNER_CSV_PATH", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		KafkaBrokers: splitList(os.Getenv("KAFKA_BOOTSTRAP_SERVERS")),
		KafkaTopic:   getEnv("KAFKA_TOPIC_KEYWORD_DATASETS", "keyword-datasets"),

		S3Bucket:       getEnv("S3_BUCKET", ""),
		S3Region:       getEnv("S3_REGION", ""),
		S3Profile:      getEnv("S3_PROFILE", ""),
		S3Prefix:       getEnv("S3_PREFIX", ""),
		S3UsePathStyle: strings.EqualFold(getEnv("S3_USE_PATH_STYLE", ""), "true"),
	}
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, defaultValue string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultValue
}

// getEnvInt reads an integer environment variable with a fallback default.
func getEnvInt(key string, defaultValue int) int {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvFloat reads a float environment variable with a fallback default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// splitList parses a comma-separated list, trimming whitespace and dropping
// empty entries.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
