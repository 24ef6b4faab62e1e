package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/musadiqpeerzada/memgen.ai/pkg/embedding"
	"github.com/musadiqpeerzada/memgen.ai/pkg/logger"
	"github.com/musadiqpeerzada/memgen.ai/pkg/qdrant"
	"github.com/musadiqpeerzada/memgen.ai/pkg/templates"
)

// memgen-indexer seeds the template collection from the memegen.link catalog
// and exits. Set FORCE_RESEED=true to re-index an already seeded collection.
func main() {
	_ = godotenv.Load()

	app := fx.New(appOptions())
	app.Run()
}

func appOptions() fx.Option {
	return fx.Options(
		logger.FXModule,
		embedding.FXModule,
		qdrant.FXModule,
		templates.FXModule,

		fx.Provide(
			func(l *logger.Logger) qdrant.Logger { return l },
		),

		fx.Invoke(runSeed),
	)
}

func runSeed(lc fx.Lifecycle, seeder *templates.Seeder, sd fx.Shutdowner, log *logger.Logger) {
	force := os.Getenv("FORCE_RESEED") == "true"
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := seeder.Seed(context.Background(), force); err != nil {
					log.Error("seeding failed", err, nil)
					_ = sd.Shutdown(fx.ExitCode(1))
					return
				}
				_ = sd.Shutdown()
			}()
			return nil
		},
	})
}
