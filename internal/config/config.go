// Package config loads connector settings from the environment. A .env file
// in the working directory is honored when present.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the connector.
type Config struct {
	AccessKey     string        // YUKI_ACCESS_KEY
	Host          string        // YUKI_HOST, default production host
	HTTPTimeout   time.Duration // YUKI_HTTP_TIMEOUT
	LogLevel      string        // YUKI_LOG_LEVEL
	LogFormat     string        // YUKI_LOG_FORMAT
	ServerAddress string        // YUKI_SERVER_ADDRESS
}

// Load reads the configuration from the environment. A missing access key is
// not an error here: the connector reports it as a configuration error at
// login time, so one-shot commands that never log in still work.
func Load() (*Config, error) {
	// Missing .env is fine; explicit environment always wins.
	_ = godotenv.Load()

	cfg := &Config{
		AccessKey:     os.Getenv("YUKI_ACCESS_KEY"),
		Host:          os.Getenv("YUKI_HOST"),
		HTTPTimeout:   60 * time.Second,
		LogLevel:      envOr("YUKI_LOG_LEVEL", "info"),
		LogFormat:     envOr("YUKI_LOG_FORMAT", "console"),
		ServerAddress: envOr("YUKI_SERVER_ADDRESS", ":8080"),
	}

	if raw := os.Getenv("YUKI_HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid YUKI_HTTP_TIMEOUT %q: %w", raw, err)
		}
		cfg.HTTPTimeout = d
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
