package qdrant

import (
	"os"
	"strconv"
	"time"
)

// Config holds connection and behavior settings for the Qdrant client.
type Config struct {
	// Hostname of the Qdrant server, e.g. "localhost".
	Endpoint string

	// gRPC port of the Qdrant server. Defaults to 6334.
	Port int

	// Optional authentication token for secured deployments.
	ApiKey string

	// Collection this client operates on. The meme template catalog lives
	// in a single fixed collection.
	Collection string

	// Dimensionality of stored vectors. Must match the embedding model.
	VectorSize uint64

	// Maximum request duration before timing out.
	Timeout time.Duration
}

// NewConfig reads Qdrant settings from the environment with defaults
// suitable for a local deployment.
func NewConfig() *Config {
	port := 6334
	if v := os.Getenv("QDRANT_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			port = n
		}
	}
	vectorSize := uint64(1536)
	if v := os.Getenv("QDRANT_VECTOR_SIZE"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil && n > 0 {
			vectorSize = n
		}
	}
	return &Config{
		Endpoint:   getenvDefault("QDRANT_ENDPOINT", "localhost"),
		Port:       port,
		ApiKey:     os.Getenv("QDRANT_API_KEY"),
		Collection: getenvDefault("QDRANT_COLLECTION", "meme-templates"),
		VectorSize: vectorSize,
		Timeout:    5 * time.Second,
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
