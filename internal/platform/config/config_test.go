package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/ingest")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/ingest", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 90, cfg.ReversalWindowDays)
	assert.InDelta(t, 0.6, cfg.ReversalSimilarityThreshold, 1e-9)
	assert.Equal(t, 3, cfg.DuplicateWindowDays)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "60-M", cfg.RateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "pdftotext", cfg.PDFToTextPath)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("REVERSAL_WINDOW_DAYS", "30")
	t.Setenv("REVERSAL_SIMILARITY_THRESHOLD", "0.75")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("IS_PRODUCTION", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.ReversalWindowDays)
	assert.InDelta(t, 0.75, cfg.ReversalSimilarityThreshold, 1e-9)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.IsProduction)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "threshold above one", key: "REVERSAL_SIMILARITY_THRESHOLD", value: "1.5"},
		{name: "non numeric port", key: "PORT", value: "http"},
		{name: "zero duplicate window", key: "DUPLICATE_WINDOW_DAYS", value: "0"},
		{name: "tiny upload limit", key: "MAX_UPLOAD_BYTES", value: "10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg, err := LoadConfig()

			assert.Nil(t, cfg)
			assert.Error(t, err)
		})
	}
}
