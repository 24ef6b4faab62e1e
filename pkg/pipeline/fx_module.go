package pipeline

import (
	"go.uber.org/fx"

	"github.com/musadiqpeerzada/memgen.ai/pkg/analyzer"
	"github.com/musadiqpeerzada/memgen.ai/pkg/campaign"
)

var FXModule = fx.Module("pipeline",
	fx.Provide(
		func(a *analyzer.Analyzer) ProfileExtractor { return a },
		func(g *campaign.Generator) ConceptGenerator { return g },
		NewPipeline,
	),
)
