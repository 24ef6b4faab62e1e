package renderer

import (
	"github.com/musadiqpeerzada/memgen.ai/pkg/logger"
)

// NewRenderer selects the rendering strategy configured by MEME_GENERATOR.
func NewRenderer(cfg *Config, index TemplateMatcher, store ObjectStore, log *logger.Logger) (Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Generator {
	case GeneratorOpenAI:
		return NewOpenAIRenderer(store, cfg, log), nil
	default:
		return NewMemegenRenderer(index, store, cfg, log), nil
	}
}
