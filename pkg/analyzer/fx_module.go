package analyzer

import "go.uber.org/fx"

var FXModule = fx.Module("analyzer",
	fx.Provide(
		NewConfig,
		NewAnalyzer,
	),
)
