package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration.
type Config struct {
	Env         string `envconfig:"ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"debug"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`
	ServerPort  string `envconfig:"SERVER_PORT" default:"8000"`
	BasePath    string `envconfig:"API_BASE_PATH" default:"/api/v1"`

	// CORS Settings
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`

	// Document store for user profiles
	DatabaseURL   string `envconfig:"DATABASE_URL" default:"mongodb://localhost:27017"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"chatgto"`

	// Identity provider
	FirebaseCredentialsPath string `envconfig:"FIREBASE_CREDENTIALS_PATH" default:"firebase-service-account.json"`
	AuthRequireToken        bool   `envconfig:"AUTH_REQUIRE_TOKEN" default:"false"`

	// Scenario catalog. Empty path means the embedded seed.
	CatalogPath     string `envconfig:"CATALOG_PATH"`
	CatalogStrictEV bool   `envconfig:"CATALOG_STRICT_EV" default:"false"`

	// Rate limiting, 0 disables it. Redis is used as the store when REDIS_ADDR is set.
	RateLimitPerMinute int    `envconfig:"RATE_LIMIT_PER_MINUTE" default:"0"`
	RedisAddr          string `envconfig:"REDIS_ADDR"`
	RedisDB            int    `envconfig:"REDIS_DB" default:"0"`
	// Secret field, read from /run/secrets
	RedisPassword string `ignored:"true"`

	// Tracing
	OtelEnabled      bool    `envconfig:"OTEL_ENABLED" default:"false"`
	OtelEndpoint     string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelSamplerRatio float64 `envconfig:"OTEL_SAMPLER_RATIO" default:"0.1"`
	ServiceName      string  `envconfig:"SERVICE_NAME" default:"chatgto-server"`
}

// GetAllowedOrigins splits the CORSAllowedOrigins string into a slice.
func (c *Config) GetAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",") {
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Validate checks values envconfig cannot check on its own.
func (c *Config) Validate() error {
	var errs []error
	if _, err := strconv.Atoi(c.ServerPort); err != nil {
		errs = append(errs, fmt.Errorf("SERVER_PORT must be numeric, got %q", c.ServerPort))
	}
	if c.OtelSamplerRatio < 0 || c.OtelSamplerRatio > 1 {
		errs = append(errs, fmt.Errorf("OTEL_SAMPLER_RATIO must be within [0,1], got %v", c.OtelSamplerRatio))
	}
	if c.RateLimitPerMinute < 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative, got %d", c.RateLimitPerMinute))
	}
	return errors.Join(errs...)
}

// LoadConfig loads configuration from an optional .env file, the environment and secrets.
func LoadConfig(envFilePath string) (*Config, error) {
	if envFilePath != "" {
		if _, err := os.Stat(envFilePath); err == nil {
			if err := godotenv.Load(envFilePath); err != nil {
				log.Printf("Warning: Could not load %s file: %v", envFilePath, err)
			} else {
				log.Printf("Loaded configuration from %s", envFilePath)
			}
		} else if !os.IsNotExist(err) {
			log.Printf("Warning: Error checking %s file: %v", envFilePath, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing env vars: %w", err)
	}
	cfg.BasePath = "/" + strings.Trim(cfg.BasePath, "/")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Optional secret
	if redisPass, err := ReadSecret("redis_password"); err == nil {
		cfg.RedisPassword = redisPass
	}

	return &cfg, nil
}
