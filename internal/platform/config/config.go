package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string `validate:"required,numeric"`
	IsProduction  bool
	EnableDBCheck bool

	// Reconciliation
	ReversalWindowDays          int     `validate:"min=1,max=3650"`
	ReversalSimilarityThreshold float64 `validate:"gt=0,lte=1"`
	DuplicateWindowDays         int     `validate:"min=1,max=365"`

	// Uploads
	MaxUploadBytes int64  `validate:"min=1024"`
	RateLimit      string `validate:"required"` // ulule/limiter format, e.g. "60-M"

	// pdftotext binary used for binary PDF uploads; empty accepts pre-extracted text only
	PDFToTextPath string

	CORSAllowedOrigins []string `validate:"dive,required"`
	MigrationsPath     string   `validate:"required"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("REVERSAL_WINDOW_DAYS", 90)
	viper.SetDefault("REVERSAL_SIMILARITY_THRESHOLD", 0.6)
	viper.SetDefault("DUPLICATE_WINDOW_DAYS", 3)
	viper.SetDefault("MAX_UPLOAD_BYTES", 10<<20)
	viper.SetDefault("RATE_LIMIT", "60-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("PDF_TO_TEXT_PATH", "pdftotext")

	// Environment variables override .env values, which override the defaults above.
	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:                 viper.GetString("PGSQL_URL"),
		Port:                        viper.GetString("PORT"),
		IsProduction:                viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:               viper.GetBool("ENABLE_DB_CHECK"),
		ReversalWindowDays:          viper.GetInt("REVERSAL_WINDOW_DAYS"),
		ReversalSimilarityThreshold: viper.GetFloat64("REVERSAL_SIMILARITY_THRESHOLD"),
		DuplicateWindowDays:         viper.GetInt("DUPLICATE_WINDOW_DAYS"),
		MaxUploadBytes:              viper.GetInt64("MAX_UPLOAD_BYTES"),
		RateLimit:                   viper.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:          splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		MigrationsPath:              viper.GetString("MIGRATIONS_PATH"),
		PDFToTextPath:               viper.GetString("PDF_TO_TEXT_PATH"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// splitList reads a comma separated setting, dropping empty entries.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
