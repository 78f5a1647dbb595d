package config

import (
	"os"
	"strconv"

	"github.com/blaisecz/better-rest/internal/domain"
	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string
	Env      string

	// Sleep model configuration
	ModelPath           string
	PredictionCacheSize int

	// Presentation
	ErrorMode   domain.ErrorMode
	ClockFormat domain.ClockFormat

	// OpenTelemetry OTLP/HTTP exporter
	OTLPEndpoint string
	OTLPHeaders  string
}

func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Env:      getEnv("SERVICE_ENV", "development"),

		ModelPath:           getEnv("MODEL_PATH", ""),
		PredictionCacheSize: getEnvInt("PREDICTION_CACHE_SIZE", 1024),

		ErrorMode:   domain.ParseErrorMode(getEnv("ERROR_MODE", string(domain.ErrorModeSurface))),
		ClockFormat: domain.ParseClockFormat(getEnv("CLOCK_FORMAT", string(domain.Clock24h))),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OTLPHeaders:  getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
