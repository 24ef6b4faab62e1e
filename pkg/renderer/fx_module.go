package renderer

import (
	"go.uber.org/fx"

	"github.com/musadiqpeerzada/memgen.ai/pkg/storage"
	"github.com/musadiqpeerzada/memgen.ai/pkg/templates"
)

var FXModule = fx.Module("renderer",
	fx.Provide(
		NewConfig,
		func(i *templates.Index) TemplateMatcher { return i },
		func(s *storage.Store) ObjectStore { return s },
		NewRenderer,
	),
)
