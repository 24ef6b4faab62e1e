package campaign

import (
	"os"
	"strconv"
)

type Config struct {
	// MaxAttempts bounds generation retries per request.
	MaxAttempts int

	// Temperature for the generation call. High on purpose: meme concepts
	// need variety, not determinism.
	Temperature float64
}

// NewConfig reads campaign generator settings from the environment.
func NewConfig() *Config {
	cfg := &Config{
		MaxAttempts: 3,
		Temperature: 1.2,
	}
	if v := os.Getenv("CAMPAIGN_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxAttempts = n
		}
	}
	return cfg
}
