// Package config loads sheetdiff settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. SHEETDIFF_LOGLEVEL.
const Prefix = "SHEETDIFF"

// Config represents the complete tool configuration
type Config struct {
	// Env selects log formatting: "production" logs JSON, anything else a console format.
	Env      string `envconfig:"ENV" default:"development"`
	LogLevel string `envconfig:"LOGLEVEL"`

	// Priority is the default group order for the sort command.
	Priority    []string `envconfig:"PRIORITY" default:"DWM,FEDEX,DHLE,POL,UPS"`
	GroupColumn string   `envconfig:"GROUP_COLUMN" default:"Broker"`

	// ProgressEvery is how many matched row pairs pass between progress logs.
	ProgressEvery int `envconfig:"PROGRESS_EVERY" default:"10"`

	Google GoogleConfig `envconfig:"GOOGLE"`
}

// GoogleConfig contains settings for reading Google Sheets
type GoogleConfig struct {
	CredentialsFile string        `envconfig:"CREDENTIALS_FILE" default:"credentials.json"`
	MaxRetries      int           `envconfig:"MAX_RETRIES" default:"3"`
	BaseDelay       time.Duration `envconfig:"BASE_DELAY" default:"2s"`
	MaxDelay        time.Duration `envconfig:"MAX_DELAY" default:"30s"`
	Timeout         time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// Load reads a .env file if present and then the process environment.
// It reports whether a .env file was loaded.
func Load() (*Config, bool, error) {
	dotenv := godotenv.Load() == nil

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, dotenv, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, dotenv, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, dotenv, nil
}

func (c *Config) validate() error {
	if c.ProgressEvery < 0 {
		return fmt.Errorf("PROGRESS_EVERY must be >= 0, got %d", c.ProgressEvery)
	}
	if c.Google.MaxRetries < 0 {
		return fmt.Errorf("GOOGLE_MAX_RETRIES must be >= 0, got %d", c.Google.MaxRetries)
	}
	return nil
}
