package server

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/musadiqpeerzada/memgen.ai/pkg/logger"
)

var FXModule = fx.Module("server",
	fx.Provide(
		NewConfig,
		NewServer,
		NewHTTPServer,
	),
	fx.Invoke(RegisterServerLifecycle),
)

func RegisterServerLifecycle(lc fx.Lifecycle, srv *http.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				log.Info("api server listening", nil, map[string]interface{}{
					"address": srv.Addr,
				})
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("api server failed", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
