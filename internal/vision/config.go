package vision

import (
	"os"
	"strconv"
)

// Config holds the vision subsystem settings. Disabled by default; watering
// from an image is an optional path, the CLI works without it.
type Config struct {
	Enabled     bool
	LogCalls    bool
	Endpoint    string
	Model       string
	Temperature float64
	MaxTokens   int
	TimeoutMs   int
	MaxRetries  int
}

// DefaultConfig returns the configuration used when no environment
// overrides are set.
func DefaultConfig() Config {
	return Config{
		Enabled:     false,
		LogCalls:    false,
		Endpoint:    "http://localhost:11434",
		Model:       "llama3.2-vision",
		Temperature: 0.1,
		MaxTokens:   1024,
		TimeoutMs:   60000,
		MaxRetries:  1,
	}
}

// LoadConfig reads vision configuration from environment variables,
// falling back to defaults for any unset value.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("LIFEGARDEN_VISION_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("LIFEGARDEN_VISION_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("LIFEGARDEN_VISION_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("LIFEGARDEN_VISION_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("LIFEGARDEN_VISION_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("LIFEGARDEN_VISION_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}
