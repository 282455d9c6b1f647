package infra

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"creativegen/internal/domain"
)

const (
	DefaultModel       = "gemini-2.5-flash-image"
	DefaultOutputDir   = "generated_assets"
	DefaultAppEnv      = "development"
	defaultHTTPTimeout = 180
)

// SupportedModels lists the image models the CLI accepts.
var SupportedModels = []string{
	"gemini-2.5-flash-image",
	"gemini-2.0-flash-exp",
}

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv        string
	LogLevel      string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	OutputDir     string
	HTTPTimeout   time.Duration
}

// LoadConfig loads .env files when present and reads configuration from the
// environment. Credentials are checked by Validate so flags can fill them in
// first.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env", ".env.local")

	cfg := &Config{
		AppEnv:        getEnv("APP_ENV", DefaultAppEnv),
		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", "info")),
		GeminiAPIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:   getEnv("GEMINI_MODEL", DefaultModel),
		GeminiBaseURL: strings.TrimSpace(os.Getenv("GEMINI_BASE_URL")),
		OutputDir:     getEnv("OUTPUT_DIR", DefaultOutputDir),
		HTTPTimeout:   time.Second * time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", defaultHTTPTimeout)),
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout * time.Second
	}
	return cfg, nil
}

// Validate reports configuration that prevents any work from starting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.GeminiAPIKey) == "" {
		return domain.ErrMissingCredential
	}
	if !IsSupportedModel(c.GeminiModel) {
		return &UnsupportedModelError{Model: c.GeminiModel}
	}
	return nil
}

// IsSupportedModel reports whether model is one of SupportedModels.
func IsSupportedModel(model string) bool {
	for _, m := range SupportedModels {
		if m == model {
			return true
		}
	}
	return false
}

// UnsupportedModelError names the rejected model and the accepted choices.
type UnsupportedModelError struct {
	Model string
}

func (e *UnsupportedModelError) Error() string {
	return domain.ErrUnsupportedModel.Error() + " " + strconv.Quote(e.Model) + " (choose from " + strings.Join(SupportedModels, ", ") + ")"
}

func (e *UnsupportedModelError) Unwrap() error {
	return domain.ErrUnsupportedModel
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return fallback
}
