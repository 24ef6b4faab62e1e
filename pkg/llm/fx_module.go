package llm

import "go.uber.org/fx"

// FXModule wires the LLM provider into Fx.
//
// It provides:
//   - *Config   (NewConfig)
//   - Provider  (NewProvider, selected by LLM_PROVIDER)
var FXModule = fx.Module("llm",
	fx.Provide(
		NewConfig,
		NewProvider,
	),
)
