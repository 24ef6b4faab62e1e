package llm

import "fmt"

// NewProvider creates the configured LLM provider. Strategy selection is a
// static configuration choice; one provider instance serves the whole
// process and is safe for concurrent use.
func NewProvider(cfg *Config) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Provider {
	case ProviderOpenAI:
		return newOpenAIProvider(cfg), nil
	case ProviderOllama:
		return newOllamaProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}
