package qdrant

import (
	"context"
	"sync"

	"go.uber.org/fx"
)

// FXModule integrates the Qdrant client into an Fx-based application: it
// provides the client factory and registers its shutdown hook.
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewConfig,
		NewQdrantClient,
	),
	fx.Invoke(RegisterQdrantLifecycle),
)

// RegisterQdrantLifecycle handles shutdown of the Qdrant client.
func RegisterQdrantLifecycle(lc fx.Lifecycle, client *Client) {
	var once sync.Once

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			once.Do(client.Close)
			return nil
		},
	})
}
