package analyzer

import (
	"os"
	"strconv"
)

type Config struct {
	// CharacterLimit caps how much page text is sent to the model.
	CharacterLimit int

	// MaxAttempts bounds extraction retries per URL.
	MaxAttempts int

	// Temperature for the extraction call. Kept low so the model stays
	// factual rather than creative.
	Temperature float64

	// HTTP timeout seconds for page fetches (default 30).
	HTTPTimeoutS int
}

// NewConfig reads analyzer settings from the environment.
func NewConfig() *Config {
	cfg := &Config{
		CharacterLimit: 6000,
		MaxAttempts:    3,
		Temperature:    0.2,
		HTTPTimeoutS:   30,
	}
	if v := os.Getenv("ANALYZER_CHARACTER_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CharacterLimit = n
		}
	}
	if v := os.Getenv("ANALYZER_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxAttempts = n
		}
	}
	if v := os.Getenv("ANALYZER_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPTimeoutS = n
		}
	}
	return cfg
}
