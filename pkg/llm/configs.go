package llm

import (
	"fmt"
	"os"
	"strconv"
)

const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

type Config struct {
	// Which provider to use: "openai" or "ollama"
	Provider string

	// OpenAI settings
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// Ollama settings
	OllamaBaseURL string
	OllamaModel   string

	// HTTP timeout in seconds (default 120; completions are slow)
	HTTPTimeoutS int
}

// NewConfig reads LLM provider settings from the environment.
func NewConfig() *Config {
	timeout := 120
	if v := os.Getenv("LLM_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}
	return &Config{
		Provider:      getenvDefault("LLM_PROVIDER", ProviderOllama),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getenvDefault("OPENAI_MODEL", "gpt-4"),
		OpenAIBaseURL: getenvDefault("OPENAI_BASE_URL", "https://api.openai.com"),
		OllamaBaseURL: getenvDefault("OLLAMA_HOST", "http://host.docker.internal:11434"),
		OllamaModel:   getenvDefault("OLLAMA_MODEL", "llama3.2"),
		HTTPTimeoutS:  timeout,
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("openai provider requires OPENAI_API_KEY")
		}
	case ProviderOllama:
		if c.OllamaBaseURL == "" || c.OllamaModel == "" {
			return fmt.Errorf("ollama provider requires OLLAMA_HOST and OLLAMA_MODEL")
		}
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
