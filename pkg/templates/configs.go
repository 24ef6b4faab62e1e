package templates

import (
	"os"
	"strconv"
)

type Config struct {
	// TopK nearest neighbors requested per retrieval query. The index keeps
	// only the top-ranked hit, so this stays small.
	TopK int

	// MemegenBaseURL is the root of the memegen.link API, used by the
	// catalog fetcher.
	MemegenBaseURL string

	// HTTP timeout seconds for catalog fetches (default 30).
	HTTPTimeoutS int
}

// NewConfig reads template retrieval settings from the environment.
func NewConfig() *Config {
	topK := 1
	if v := os.Getenv("TEMPLATE_TOP_K"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			topK = n
		}
	}
	timeout := 30
	if v := os.Getenv("TEMPLATE_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}
	base := os.Getenv("MEMEGEN_BASE_URL")
	if base == "" {
		base = "https://api.memegen.link"
	}
	return &Config{
		TopK:           topK,
		MemegenBaseURL: base,
		HTTPTimeoutS:   timeout,
	}
}
