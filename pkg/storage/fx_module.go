package storage

import "go.uber.org/fx"

var FXModule = fx.Module("storage",
	fx.Provide(
		NewConfig,
		NewStore,
	),
)
