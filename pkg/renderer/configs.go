package renderer

import (
	"fmt"
	"os"
	"strconv"
)

const (
	GeneratorMemegen = "memegen"
	GeneratorOpenAI  = "openai"
)

type Config struct {
	// Generator selects the rendering strategy: "memegen" (template API)
	// or "openai" (DALL·E 3).
	Generator string

	// MemegenBaseURL is the root of the memegen.link API.
	MemegenBaseURL string

	// OpenAI image generation settings, used when Generator is "openai".
	OpenAIAPIKey  string
	OpenAIBaseURL string
	ImageModel    string
	ImageSize     string

	// HTTP timeout seconds for image fetches and generation calls
	// (default 60, image generation is slow).
	HTTPTimeoutS int
}

// NewConfig reads renderer settings from the environment.
func NewConfig() *Config {
	cfg := &Config{
		Generator:      getenvDefault("MEME_GENERATOR", GeneratorMemegen),
		MemegenBaseURL: getenvDefault("MEMEGEN_BASE_URL", "https://api.memegen.link"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:  getenvDefault("OPENAI_BASE_URL", "https://api.openai.com"),
		ImageModel:     getenvDefault("OPENAI_IMAGE_MODEL", "dall-e-3"),
		ImageSize:      getenvDefault("OPENAI_IMAGE_SIZE", "1024x1024"),
		HTTPTimeoutS:   60,
	}
	if v := os.Getenv("RENDERER_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPTimeoutS = n
		}
	}
	return cfg
}

// Validate checks strategy-specific requirements.
func (c *Config) Validate() error {
	switch c.Generator {
	case GeneratorMemegen:
	case GeneratorOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("renderer: OPENAI_API_KEY is required when MEME_GENERATOR=openai")
		}
	default:
		return fmt.Errorf("renderer: unknown MEME_GENERATOR %q", c.Generator)
	}
	return nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
