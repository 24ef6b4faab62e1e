package templates

import "go.uber.org/fx"

var FXModule = fx.Module("templates",
	fx.Provide(
		NewConfig,
		NewCatalog,
		NewSeeder,
		NewIndex,
	),
)
