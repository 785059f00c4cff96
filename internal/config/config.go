// Package config reads the configuration of the backend from environment
// variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrInvalidURL = errors.New("API_URL must be an absolute URL with scheme and host")

// Config is the configuration of the backend.
type Config struct {
	APIURL           string   `env:"API_URL,required"`                     // Base URL of the API, used for links in responses
	GinMode          string   `env:"GIN_MODE" envDefault:"release"`        // gin uses debug as default, we use release
	LogFormat        string   `env:"LOG_FORMAT"`                           // "human" for console output, JSON otherwise
	DataDir          string   `env:"DATA_DIR" envDefault:"data"`           // Directory for the SQLite database
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:" "` // Allowed origins, CORS is disabled when empty
	EnablePprof      bool     `env:"ENABLE_PPROF"`
	SeedDemo         bool     `env:"SEED_DEMO"` // Create demo envelopes in an empty database
	Port             int      `env:"PORT" envDefault:"8080"`
}

// Load reads a .env file if it exists and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks values env cannot check.
func (c Config) Validate() error {
	_, err := c.URL()
	return err
}

// URL returns the parsed API URL.
func (c Config) URL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w, got '%s'", ErrInvalidURL, c.APIURL)
	}

	return u, nil
}

// HumanLogs reports whether logs are written in a human readable format.
//
// If LOG_FORMAT is not set, this is the case for debug mode.
func (c Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == "debug"
	}

	return c.LogFormat == "human"
}

// DSN returns the path of the SQLite database.
func (c Config) DSN() string {
	return filepath.Join(c.DataDir, "allocator.db")
}

// Address returns the address the server listens on.
func (c Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}
