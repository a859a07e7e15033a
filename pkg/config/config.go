package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig
	Dataset DatasetConfig
	Summary SummaryConfig
	OpenAI  OpenAIConfig
	Gemini  GeminiConfig
	OTEL    OTELConfig
}

// AppConfig holds general application settings
type AppConfig struct {
	Env string
}

// DatasetConfig holds input/output paths for the batch run
type DatasetConfig struct {
	Path           string
	SelectionsPath string
	ZonesPath      string
	OutputPath     string
	DataSource     string
}

// SummaryConfig selects and paces the narrative summary provider
type SummaryConfig struct {
	Provider string
	Pause    time.Duration
}

// OpenAIConfig holds OpenAI configuration
type OpenAIConfig struct {
	APIKey string
	Model  string
}

// GeminiConfig holds Gemini configuration
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		App: AppConfig{
			Env: getEnv("APP_ENV", "development"),
		},
		Dataset: DatasetConfig{
			Path:           getEnv("DATASET_PATH", "data/facilities.csv"),
			SelectionsPath: getEnv("SELECTIONS_PATH", "config/facility_selections.json"),
			ZonesPath:      getEnv("DESERT_ZONES_PATH", "config/desert_zones.json"),
			OutputPath:     getEnv("OUTPUT_PATH", "analysis.json"),
			DataSource:     getEnv("DATA_SOURCE", "Virtue Foundation Ghana v0.3"),
		},
		Summary: SummaryConfig{
			Provider: getEnv("SUMMARY_PROVIDER", "openai"),
			Pause:    time.Duration(getEnvAsInt("SUMMARY_PAUSE_MS", 500)) * time.Millisecond,
		},
		OpenAI: OpenAIConfig{
			APIKey: getEnv("OPENAI_API_KEY", ""),
			Model:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "health-desert-analyzer"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
