package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("FASTAPI_URL", "")
	t.Setenv("DRAFT_TOKEN_EXPIRATION_MINUTES", "60")
	t.Setenv("DRAFT_TOKEN_SECRET", "")
	t.Setenv("APP_ENV", "development")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, defaultMaternalServiceURL, cfg.Prediction.MaternalBaseURL)
	assert.Equal(t, defaultDepressionServiceURL, cfg.Prediction.DepressionBaseURL)
	assert.Equal(t, 60*time.Minute, cfg.Draft.Expiration)
	assert.Equal(t, "default_draft_secret", cfg.Draft.Secret)
}

func TestLoadConfigProductionRequiresDraftSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DRAFT_TOKEN_SECRET", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "DRAFT_TOKEN_SECRET")

	t.Setenv("DRAFT_TOKEN_SECRET", "s3cret")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Draft.Secret)
}

func TestLoadConfigServiceOverride(t *testing.T) {
	t.Setenv("FASTAPI_URL", "http://predictor.internal:9000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://predictor.internal:9000", cfg.Prediction.MaternalBaseURL)
	assert.Equal(t, "http://predictor.internal:9000", cfg.Prediction.DepressionBaseURL)
}

func TestLoadConfigInvalidDraftExpiration(t *testing.T) {
	t.Setenv("DRAFT_TOKEN_EXPIRATION_MINUTES", "soon")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "DRAFT_TOKEN_EXPIRATION_MINUTES")

	t.Setenv("DRAFT_TOKEN_EXPIRATION_MINUTES", "0")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&Config{Environment: "production"}).IsProduction())
	assert.False(t, (&Config{Environment: "development"}).IsProduction())
}
