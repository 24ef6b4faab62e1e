package campaign

import (
	"go.uber.org/fx"

	"github.com/musadiqpeerzada/memgen.ai/pkg/templates"
)

var FXModule = fx.Module("campaign",
	fx.Provide(
		NewConfig,
		func(i *templates.Index) TemplateSuggester { return i },
		NewGenerator,
	),
)
