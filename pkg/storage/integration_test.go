package storage

import (
	"context"
	"fmt"
	"net"
	"net/http"
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

func setupMinIOContainer(ctx context.Context, port int) (testcontainers.Container, error) {
	portStr := fmt.Sprintf("%d", port)
	portBindings := nat.PortMap{
		"9000/tcp": []nat.PortBinding{{HostPort: portStr}},
	}

	req := testcontainers.ContainerRequest{
		Image: "minio/minio:RELEASE.2024-01-16T16-07-38Z",
		Cmd:   []string{"server", "/data"},
		Env: map[string]string{
			"MINIO_ACCESS_KEY": "minio_admin",
			"MINIO_SECRET_KEY": "minio_admin",
		},
		ExposedPorts: []string{"9000/tcp"},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("9000/tcp").WithStartupTimeout(20*time.Second),
			wait.ForHTTP("/minio/health/ready").WithPort("9000/tcp").WithStartupTimeout(20*time.Second),
		),
	}

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func getFreePort() (int, error) {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = l.Close()
	}()
	return l.Addr().(*net.TCPAddr).Port, nil
}

func TestStoreIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping minio integration test in short mode")
	}

	ctx := context.Background()

	port, err := getFreePort()
	require.NoError(t, err)

	c, err := setupMinIOContainer(ctx, port)
	require.NoError(t, err)
	defer func() {
		_ = c.Terminate(ctx)
	}()

	log := logger.NewLoggerClient(logger.Config{Level: logger.Error, ServiceName: "test"})
	cfg := Config{
		Connection: ConnectionConfig{
			Endpoint:        fmt.Sprintf("localhost:%d", port),
			AccessKeyID:     "minio_admin",
			SecretAccessKey: "minio_admin",
			BucketName:      "memgen-test",
		},
		Presigned: PresignedConfig{ExpiryDuration: time.Hour},
	}

	store, err := NewStore(cfg, log)
	require.NoError(t, err)

	t.Run("put returns a working presigned url", func(t *testing.T) {
		url, err := store.Put(ctx, "Acme_drake_20260831_123045.png", []byte("png-bytes"), "image/png")
		require.NoError(t, err)
		require.NotEmpty(t, url)

		resp, err := http.Get(url)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("get round-trips content", func(t *testing.T) {
		data, err := store.Get(ctx, "Acme_drake_20260831_123045.png")
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), data)
	})

	t.Run("presigned url host can be rewritten", func(t *testing.T) {
		store.cfg.Presigned.BaseURL = "https://cdn.example.com"
		defer func() { store.cfg.Presigned.BaseURL = "" }()

		url, err := store.PresignedGet(ctx, "Acme_drake_20260831_123045.png")
		require.NoError(t, err)
		assert.Contains(t, url, "https://cdn.example.com/")
	})
}
