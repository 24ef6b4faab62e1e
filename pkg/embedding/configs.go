package embedding

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// API key for the embeddings endpoint (optional for local backends).
	APIKey string

	// Endpoint is the full embeddings URL, OpenAI-compatible.
	Endpoint string

	// Model identifies the encoder. The same model version must be used for
	// indexing and querying or vectors stop being comparable.
	Model string

	// Dimensions of the produced vectors. Must match the index collection.
	Dimensions int

	// HTTP timeout seconds (default 30).
	HTTPTimeoutS int
}

// NewConfig reads embedding settings from the environment.
func NewConfig() *Config {
	timeout := 30
	if v := os.Getenv("EMBEDDING_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}
	dims := 1536
	if v := os.Getenv("EMBEDDING_DIMENSIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			dims = n
		}
	}
	return &Config{
		APIKey:       os.Getenv("EMBEDDING_API_KEY"),
		Endpoint:     getenvDefault("EMBEDDING_ENDPOINT", "https://api.openai.com/v1/embeddings"),
		Model:        getenvDefault("EMBEDDING_MODEL", "text-embedding-3-small"),
		Dimensions:   dims,
		HTTPTimeoutS: timeout,
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_ENDPOINT")
	}
	if c.Model == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_MODEL")
	}
	return nil
}
