package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// Fallback base addresses of the prediction service. The two kinds have
	// historically pointed at different deployments; FASTAPI_URL overrides both.
	defaultMaternalServiceURL   = "https://web-production-25eef.up.railway.app"
	defaultDepressionServiceURL = "http://localhost:8000"
)

// Config holds all configuration for our application
type Config struct {
	Port        string
	Origin      string
	Environment string
	LogLevel    string
	Prediction  PredictionConfig
	Draft       DraftConfig
}

// PredictionConfig holds the base addresses of the external prediction service
type PredictionConfig struct {
	MaternalBaseURL   string
	DepressionBaseURL string
}

// DraftConfig holds signing settings for in-progress form drafts
type DraftConfig struct {
	Secret     string
	Expiration time.Duration
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	predictionConfig := PredictionConfig{
		MaternalBaseURL:   defaultMaternalServiceURL,
		DepressionBaseURL: defaultDepressionServiceURL,
	}
	if override := getEnv("FASTAPI_URL", ""); override != "" {
		predictionConfig.MaternalBaseURL = override
		predictionConfig.DepressionBaseURL = override
	}

	draftExpMinutes, err := strconv.Atoi(getEnv("DRAFT_TOKEN_EXPIRATION_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid DRAFT_TOKEN_EXPIRATION_MINUTES: %w", err)
	}
	if draftExpMinutes <= 0 {
		return nil, fmt.Errorf("invalid DRAFT_TOKEN_EXPIRATION_MINUTES: must be positive, got %d", draftExpMinutes)
	}

	environment := getEnv("APP_ENV", "development")
	draftSecret := getEnv("DRAFT_TOKEN_SECRET", "")
	if draftSecret == "" {
		if environment == "production" {
			return nil, fmt.Errorf("DRAFT_TOKEN_SECRET must be set in production")
		}
		draftSecret = "default_draft_secret"
	}

	return &Config{
		Port:        getEnv("PORT", "3001"),
		Origin:      getEnv("ORIGIN", "http://localhost:3000"),
		Environment: environment,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Prediction:  predictionConfig,
		Draft: DraftConfig{
			Secret:     draftSecret,
			Expiration: time.Duration(draftExpMinutes) * time.Minute,
		},
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
