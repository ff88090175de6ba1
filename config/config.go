package config

import (
	"os"
	"strconv"
	"strings"
)

// Inference backends
const (
	BackendVertex = "vertex"
	BackendStudio = "studio"
)

// Catalog sources
const (
	CatalogBuiltin   = "builtin"
	CatalogFile      = "file"
	CatalogFirestore = "firestore"
	CatalogGCS       = "gcs"
)

// DefaultMaxUploadBytes is the 5 MiB upload ceiling
const DefaultMaxUploadBytes = 5 * 1024 * 1024

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	Debug       bool
	CORSOrigins []string

	// Inference engine
	InferenceBackend  string
	ProjectID         string
	Location          string
	GeminiAPIKey      string
	GeminiModel       string
	ValidateResponses bool

	// Timeouts (0 leaves the SDK default in place)
	HTTPTimeoutSeconds int

	// Resume intake
	MaxUploadBytes  int64
	IncludeFileName bool
	TargetMarket    string

	// Job catalog
	CatalogSource     string
	CatalogPath       string
	CatalogBucket     string
	CatalogObject     string
	CatalogCollection string

	// Sessions
	SessionSecret        string
	SessionTTLMinutes    int
	AnalyzeRatePerMinute int
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Debug:       getEnvBool("DEBUG", false),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),

		// Inference engine
		InferenceBackend:  strings.ToLower(getEnv("INFERENCE_BACKEND", BackendVertex)),
		ProjectID:         getEnv("PROJECT_ID", ""),
		Location:          getEnv("LOCATION", "us-central1"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		ValidateResponses: getEnvBool("VALIDATE_RESPONSES", true),

		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 0),

		// Resume intake
		MaxUploadBytes:  int64(getEnvInt("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes)),
		IncludeFileName: getEnvBool("INCLUDE_FILE_NAME", true),
		TargetMarket:    getEnv("TARGET_MARKET", "South African"),

		// Job catalog
		CatalogSource:     strings.ToLower(getEnv("CATALOG_SOURCE", CatalogBuiltin)),
		CatalogPath:       getEnv("CATALOG_PATH", ""),
		CatalogBucket:     getEnv("CATALOG_BUCKET", ""),
		CatalogObject:     getEnv("CATALOG_OBJECT", "catalog/jobs.json"),
		CatalogCollection: getEnv("CATALOG_COLLECTION", "jobs"),

		// Sessions
		SessionSecret:        getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
		SessionTTLMinutes:    getEnvInt("SESSION_TTL_MINUTES", 60),
		AnalyzeRatePerMinute: getEnvInt("ANALYZE_RATE_PER_MINUTE", 10),
	}

	return cfg
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	switch c.InferenceBackend {
	case BackendVertex:
		// ProjectID is required for Vertex AI
		if c.ProjectID == "" {
			return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for Vertex AI"}
		}
	case BackendStudio:
		if c.GeminiAPIKey == "" {
			return &ConfigError{Field: "GEMINI_API_KEY", Message: "GEMINI_API_KEY is required for the studio backend"}
		}
	default:
		return &ConfigError{Field: "INFERENCE_BACKEND", Message: "INFERENCE_BACKEND must be vertex or studio"}
	}

	if c.MaxUploadBytes <= 0 {
		return &ConfigError{Field: "MAX_UPLOAD_BYTES", Message: "MAX_UPLOAD_BYTES must be positive"}
	}

	if c.SessionTTLMinutes <= 0 {
		return &ConfigError{Field: "SESSION_TTL_MINUTES", Message: "SESSION_TTL_MINUTES must be positive"}
	}

	switch c.CatalogSource {
	case CatalogBuiltin:
	case CatalogFile:
		if c.CatalogPath == "" {
			return &ConfigError{Field: "CATALOG_PATH", Message: "CATALOG_PATH is required for the file catalog"}
		}
	case CatalogFirestore:
		if c.ProjectID == "" {
			return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for the Firestore catalog"}
		}
	case CatalogGCS:
		if c.CatalogBucket == "" {
			return &ConfigError{Field: "CATALOG_BUCKET", Message: "CATALOG_BUCKET is required for the Cloud Storage catalog"}
		}
	default:
		return &ConfigError{Field: "CATALOG_SOURCE", Message: "CATALOG_SOURCE must be builtin, file, firestore or gcs"}
	}

	if c.SessionSecret == "" {
		return &ConfigError{Field: "SESSION_SECRET", Message: "SESSION_SECRET must not be empty"}
	}

	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
