package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dennysfredericci/gosu-prompt-generator/internal/augmentor"
	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Augmentor AugmentorConfig
	Telemetry TelemetryConfig
	App       AppConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type AugmentorConfig struct {
	Backend     string
	URL         string
	Timeout     time.Duration
	SnippetsDir string
	MaxResults  int
}

type TelemetryConfig struct {
	OTLPEndpoint string
}

type AppConfig struct {
	Name        string
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Augmentor: AugmentorConfig{
			Backend:     strings.ToLower(getEnv("AUGMENTOR_BACKEND", augmentor.BackendSnippets)),
			URL:         getEnv("AUGMENTOR_URL", ""),
			Timeout:     getEnvAsDuration("AUGMENTOR_TIMEOUT", 30*time.Second),
			SnippetsDir: getEnv("SNIPPETS_DIR", "./snippets"),
			MaxResults:  getEnvAsInt("SNIPPETS_MAX_RESULTS", 3),
		},
		Telemetry: TelemetryConfig{
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		},
		App: AppConfig{
			Name:        getEnv("SERVICE_NAME", "gosu-prompt-generator"),
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Augmentor.Backend {
	case augmentor.BackendRemote:
		if c.Augmentor.URL == "" {
			return fmt.Errorf("AUGMENTOR_URL is required when AUGMENTOR_BACKEND=%s", augmentor.BackendRemote)
		}
	case augmentor.BackendSnippets:
		if c.Augmentor.SnippetsDir == "" {
			return fmt.Errorf("SNIPPETS_DIR is required when AUGMENTOR_BACKEND=%s", augmentor.BackendSnippets)
		}
	default:
		return fmt.Errorf("unknown AUGMENTOR_BACKEND %q", c.Augmentor.Backend)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
