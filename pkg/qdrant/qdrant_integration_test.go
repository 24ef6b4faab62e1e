package qdrant

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/musadiqpeerzada/memgen.ai/pkg/logger"
)

// qdrantContainer wraps a running Qdrant container for testing.
type qdrantContainer struct {
	testcontainers.Container
	Host string
	Port int
}

func setupQdrantContainer(ctx context.Context) (*qdrantContainer, error) {
	port, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("could not get free port: %w", err)
	}

	portStr := fmt.Sprintf("%d", port)
	portBindings := nat.PortMap{
		"6334/tcp": []nat.PortBinding{{HostPort: portStr}},
	}

	req := testcontainers.ContainerRequest{
		Image: "qdrant/qdrant:v1.11.0",
		Env: map[string]string{
			"QDRANT__SERVICE__GRPC_PORT": "6334",
		},
		ExposedPorts: []string{"6334/tcp"},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForListeningPort("6334/tcp").WithStartupTimeout(60 * time.Second),
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start qdrant container: %w", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get host: %w", err)
	}

	return &qdrantContainer{Container: c, Host: host, Port: port}, nil
}

func getFreePort() (int, error) {
	addr, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = addr.Close()
	}()
	return addr.Addr().(*net.TCPAddr).Port, nil
}

func TestQdrantIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping qdrant integration test in short mode")
	}

	ctx := context.Background()

	qc, err := setupQdrantContainer(ctx)
	require.NoError(t, err)
	defer func() {
		_ = qc.Terminate(ctx)
	}()

	log := logger.NewLoggerClient(logger.Config{Level: logger.Error, ServiceName: "test"})
	cfg := &Config{
		Endpoint:   qc.Host,
		Port:       qc.Port,
		Collection: "meme-templates-test",
		VectorSize: 4,
		Timeout:    5 * time.Second,
	}

	client, err := NewQdrantClient(cfg, log)
	require.NoError(t, err)
	defer client.Close()

	t.Run("ensure collection is idempotent", func(t *testing.T) {
		require.NoError(t, client.EnsureCollection(ctx))
		require.NoError(t, client.EnsureCollection(ctx))
	})

	t.Run("insert and search", func(t *testing.T) {
		inputs := []EmbeddingInput{
			{
				ID:     "11111111-1111-1111-1111-111111111111",
				Vector: []float32{1, 0, 0, 0},
				Meta:   map[string]any{"template_id": "drake", "name": "Drake Hotline Bling"},
			},
			{
				ID:     "22222222-2222-2222-2222-222222222222",
				Vector: []float32{0, 1, 0, 0},
				Meta:   map[string]any{"template_id": "fine", "name": "This Is Fine"},
			},
		}
		require.NoError(t, client.BatchInsert(ctx, inputs))

		count, err := client.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)

		results, err := client.Search(ctx, []float32{0.9, 0.1, 0, 0}, 1)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "drake", results[0].Meta["template_id"])
		assert.Equal(t, "Drake Hotline Bling", results[0].Meta["name"])
	})

	t.Run("upsert replaces in place", func(t *testing.T) {
		err := client.Insert(ctx, EmbeddingInput{
			ID:     "11111111-1111-1111-1111-111111111111",
			Vector: []float32{1, 0, 0, 0},
			Meta:   map[string]any{"template_id": "drake", "name": "Drake (updated)"},
		})
		require.NoError(t, err)

		count, err := client.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count, "re-inserting the same id must not add a point")
	})
}
