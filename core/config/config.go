package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned by Load when no provider credential is configured.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is required")

type Config struct {
	OTel   OTelConfig
	OpenAI OpenAIConfig
	Env    string
	Port   string
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type ServiceType string

const (
	ServiceTypeAPI ServiceType = "api"
	ServiceTypeWeb ServiceType = "web"
)

var defaultPorts = map[ServiceType]string{
	ServiceTypeAPI: "8050",
	ServiceTypeWeb: "8000",
}

// Load loads configuration from environment variables.
// In development, it loads from service-specific .env files:
//   - .env.api for the JSON API
//   - .env.web for the HTML page
//
// Falls back to .env if the service-specific file doesn't exist.
func Load(serviceType ServiceType) (Config, error) {
	if getEnv("HERONAMES_ENV", "development") == "development" {
		envFile := fmt.Sprintf(".env.%s", serviceType)
		if err := godotenv.Load(envFile); err != nil {
			_ = godotenv.Load(".env")
		}
	}

	cfg := Config{
		Env:  getEnv("HERONAMES_ENV", "development"),
		Port: getEnv("PORT", defaultPorts[serviceType]),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "heronames-"+string(serviceType)),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: getEnv("OPENAI_BASE_URL", ""),
			Model:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo-0125"),
		},
	}

	if !cfg.OpenAI.Enabled() {
		return Config{}, ErrMissingAPIKey
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c OpenAIConfig) Enabled() bool {
	return c.APIKey != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
