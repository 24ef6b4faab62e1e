package embedding

import "go.uber.org/fx"

// FXModule wires the embedding system into Fx.
//
// It provides:
//   - *Config   (NewConfig)
//   - Provider  (NewHTTPProvider)
//   - *Client   (NewClient)
var FXModule = fx.Module(
	"embedding",

	fx.Provide(
		NewConfig,
		NewHTTPProvider,
		NewClient,
	),
)
