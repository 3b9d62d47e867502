package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Production fallback origins and local development origins. These are always
// part of the allow-set, after the configured frontend URLs.
var (
	fallbackOrigins = []string{
		"https://gaiapac.ae",
		"https://www.gaiapac.ae",
	}
	localOrigins = []string{
		"http://localhost:5173",
		"http://localhost:3000",
	}
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"5000"`
	LogFile     string `env:"LOG_FILE"`

	// Frontend origins allowed to make credentialed cross-origin requests
	FrontendURL  string `env:"FRONTEND_URL"`
	Frontend2URL string `env:"FRONTEND2_URL"`

	// Database configuration. DATABASE_URL wins; otherwise the DSN is
	// assembled from the DB_* parts, and only when DB_PASSWORD is provided.
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      int    `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER" envDefault:"postgres"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME" envDefault:"gaiapac"`
	DBSSLMode   string `env:"DB_SSL_MODE" envDefault:"require"`
}

// Load loads the configuration from environment variables and .env files.
// Configuration is read exactly once at startup; both deployment shapes go
// through this same path.
func Load() (*Config, error) {
	// .env files are optional; real deployments provide variables directly.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{".env." + envName}, envLocations...)
	}
	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production mode.
// Outside production, error responses carry the underlying technical detail.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// DSN returns the PostgreSQL connection string, or "" when the database is
// not configured. A missing database does not prevent startup; the store
// gateway degrades to its unavailable state so /health can still answer.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DBPassword == "" {
		return ""
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// OriginCandidates returns the raw, ordered candidate origins for the CORS
// allow-set: configured frontends first, then the production fallbacks, then
// the local development origins. Normalization and deduplication happen in
// the cors package.
func (c *Config) OriginCandidates() []string {
	candidates := []string{c.FrontendURL, c.Frontend2URL}
	candidates = append(candidates, fallbackOrigins...)
	candidates = append(candidates, localOrigins...)
	return candidates
}
