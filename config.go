package flog

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the environment-derived settings the SDK needs. Variables
// are read with the FLOG_ prefix, e.g. FLOG_BASE_URL, FLOG_ANON_KEY.
type Config struct {
	BaseURL       string        `envconfig:"BASE_URL" required:"true"`
	AnonKey       string        `envconfig:"ANON_KEY" required:"true"`
	DeviceID      string        `envconfig:"DEVICE_ID"`
	Timeout       time.Duration `envconfig:"NETWORK_TIMEOUT" default:"30s"`
	RetryAttempts int           `envconfig:"RETRY_ATTEMPTS" default:"3"`
	RetryDelay    time.Duration `envconfig:"RETRY_DELAY" default:"2s"`
	Bucket        string        `envconfig:"BUCKET" default:"food-images"`
	MaxUploadSize int64         `envconfig:"MAX_UPLOAD_SIZE" default:"5242880"`
}

// LoadConfig reads configuration from FLOG_-prefixed environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("flog", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
