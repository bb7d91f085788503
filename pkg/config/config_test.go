package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_HuggingFaceConfig(t *testing.T) {
	// Setup environment variables
	os.Setenv("HF_API_KEY", "test-key")
	os.Setenv("HF_MODEL", "typeform/distilbert-base-uncased-mnli")
	defer func() {
		os.Unsetenv("HF_API_KEY")
		os.Unsetenv("HF_MODEL")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "test-key", cfg.HuggingFace.APIKey)
	assert.Equal(t, "typeform/distilbert-base-uncased-mnli", cfg.HuggingFace.Model)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("HF_MODEL")
	os.Unsetenv("NLP_CONFIDENCE_THRESHOLD")
	os.Unsetenv("DB_NAME")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "facebook/bart-large-mnli", cfg.HuggingFace.Model)
	assert.Equal(t, 0.10, cfg.NLP.ConfidenceThreshold)
	assert.Equal(t, "clinical_records", cfg.Database.Database)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		Database: "clinical_records",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db port=5432 user=postgres password=secret dbname=clinical_records sslmode=disable",
		cfg.DatabaseDSN(),
	)
}
