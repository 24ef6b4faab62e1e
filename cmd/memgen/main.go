package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/musadiqpeerzada/memgen.ai/pkg/analyzer"
	"github.com/musadiqpeerzada/memgen.ai/pkg/campaign"
	"github.com/musadiqpeerzada/memgen.ai/pkg/embedding"
	"github.com/musadiqpeerzada/memgen.ai/pkg/llm"
	"github.com/musadiqpeerzada/memgen.ai/pkg/logger"
	"github.com/musadiqpeerzada/memgen.ai/pkg/metrics"
	"github.com/musadiqpeerzada/memgen.ai/pkg/pipeline"
	"github.com/musadiqpeerzada/memgen.ai/pkg/qdrant"
	"github.com/musadiqpeerzada/memgen.ai/pkg/renderer"
	"github.com/musadiqpeerzada/memgen.ai/pkg/server"
	"github.com/musadiqpeerzada/memgen.ai/pkg/storage"
	"github.com/musadiqpeerzada/memgen.ai/pkg/templates"
	"github.com/musadiqpeerzada/memgen.ai/pkg/tracer"
)

func main() {
	// Missing .env is fine, the environment may be set directly.
	_ = godotenv.Load()

	app := fx.New(appOptions())
	app.Run()
}

// appOptions assembles the full application graph, kept separate from main
// so tests can validate the wiring.
func appOptions() fx.Option {
	return fx.Options(
		logger.FXModule,
		llm.FXModule,
		embedding.FXModule,
		qdrant.FXModule,
		storage.FXModule,
		templates.FXModule,
		analyzer.FXModule,
		campaign.FXModule,
		renderer.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		pipeline.FXModule,
		server.FXModule,

		// Infra packages declare their own logger interfaces; bind them
		// all to the shared zap logger.
		fx.Provide(
			func(l *logger.Logger) qdrant.Logger { return l },
			func(l *logger.Logger) storage.Logger { return l },
			func(l *logger.Logger) tracer.Logger { return l },
			func(m *metrics.Metrics) analyzer.RetryCounter {
				return m.LLMRetries.WithLabelValues("analyze")
			},
			func(m *metrics.Metrics) campaign.RetryCounter {
				return m.LLMRetries.WithLabelValues("campaign")
			},
		),
	)
}
