package qdrant

import (
	"context"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
)

// Logger defines the logging operations the qdrant package needs. Any
// compatible logger implementation can be injected.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Client wraps the official Qdrant Go client.
//
// It manages connection lifecycle, configuration, and provides helper
// methods for collection and vector operations.
type Client struct {
	api     *qdrant.Client
	cfg     *Config
	logger  Logger
	started bool
}

// NewQdrantClient constructs and initializes a new Qdrant client and
// validates connectivity via a health check.
func NewQdrantClient(cfg *Config, logger Logger) (*Client, error) {
	logger.Info("connecting to qdrant", nil, map[string]interface{}{
		"endpoint": cfg.Endpoint,
		"port":     cfg.Port,
	})

	api, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.Endpoint,
		Port:   cfg.Port,
		APIKey: cfg.ApiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant: failed to initialize client: %w", err)
	}

	c := &Client{
		api:     api,
		cfg:     cfg,
		logger:  logger,
		started: true,
	}

	if err := c.healthCheck(); err != nil {
		return nil, fmt.Errorf("qdrant: health check failed: %w", err)
	}

	return c, nil
}

// healthCheck verifies the server is reachable before the client is handed out.
func (c *Client) healthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := c.api.HealthCheck(ctx); err != nil {
		return err
	}
	c.logger.Debug("qdrant health check passed", nil, map[string]interface{}{
		"endpoint": c.cfg.Endpoint,
	})
	return nil
}

// Collection returns the collection this client is scoped to.
func (c *Client) Collection() string {
	return c.cfg.Collection
}

// Close gracefully shuts down the Qdrant client.
func (c *Client) Close() {
	if !c.started {
		return
	}
	c.started = false
	if err := c.api.Close(); err != nil {
		c.logger.Warn("qdrant close failed", err, nil)
	}
}
