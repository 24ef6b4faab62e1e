package storage

import (
	"net/url"
	"os"
	"time"
)

// Config defines the object storage configuration for rendered assets.
type Config struct {
	Connection ConnectionConfig
	Presigned  PresignedConfig
}

// ConnectionConfig contains MinIO server connection details.
type ConnectionConfig struct {
	Endpoint        string // host:port, no scheme
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	BucketName      string
	Region          string
}

// PresignedConfig controls the access URLs handed back to callers.
type PresignedConfig struct {
	// ExpiryDuration for presigned GET URLs (default 7 days, the S3 maximum).
	ExpiryDuration time.Duration

	// BaseURL optionally rewrites the presigned host, e.g. a CDN in front
	// of the bucket.
	BaseURL string
}

// NewConfig reads storage settings from the environment. MINIO_BASE_URL
// carries the scheme ("http://localhost:9000"); the scheme decides SSL.
func NewConfig() Config {
	base := getenvDefault("MINIO_BASE_URL", "http://localhost:9000")
	endpoint := base
	secure := false
	if u, err := url.Parse(base); err == nil && u.Host != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	expiry := 7 * 24 * time.Hour
	if v := os.Getenv("MINIO_PRESIGNED_EXPIRY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			expiry = d
		}
	}

	return Config{
		Connection: ConnectionConfig{
			Endpoint:        endpoint,
			AccessKeyID:     getenvDefault("MINIO_ACCESS_KEY", "minioadmin"),
			SecretAccessKey: getenvDefault("MINIO_SECRET_KEY", "minioadmin"),
			UseSSL:          secure,
			BucketName:      getenvDefault("MINIO_BUCKET", "memgen"),
			Region:          os.Getenv("MINIO_REGION"),
		},
		Presigned: PresignedConfig{
			ExpiryDuration: expiry,
			BaseURL:        os.Getenv("MINIO_PRESIGNED_BASE_URL"),
		},
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
