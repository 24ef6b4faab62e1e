package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Logger defines the interface for logging operations within the storage
// client. This allows dependency injection of any compatible logger.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Store is the MinIO-backed asset store for rendered memes. It validates
// connectivity and provisions the bucket at construction; afterwards it is
// read-mostly and safe for concurrent use.
type Store struct {
	client *minio.Client
	cfg    Config
	logger Logger
}

// NewStore creates and validates a new asset store.
func NewStore(cfg Config, logger Logger) (*Store, error) {
	if cfg.Connection.Endpoint == "" {
		return nil, fmt.Errorf("storage: minio endpoint cannot be empty")
	}

	logger.Info("connecting to minio", nil, map[string]interface{}{
		"endpoint": cfg.Connection.Endpoint,
		"secure":   cfg.Connection.UseSSL,
		"bucket":   cfg.Connection.BucketName,
	})

	client, err := minio.New(cfg.Connection.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Connection.AccessKeyID, cfg.Connection.SecretAccessKey, ""),
		Secure: cfg.Connection.UseSSL,
		Region: cfg.Connection.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to connect to minio: %w", err)
	}

	s := &Store{client: client, cfg: cfg, logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.validateConnection(ctx); err != nil {
		return nil, fmt.Errorf("storage: failed to validate minio connection: %w", err)
	}
	if err := s.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("storage: failed to verify bucket: %w", err)
	}

	return s, nil
}

// validateConnection performs a cheap operation to confirm connectivity and
// credentials.
func (s *Store) validateConnection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := s.client.ListBuckets(ctx)
	return err
}

// ensureBucketExists provisions the configured bucket before first use.
func (s *Store) ensureBucketExists(ctx context.Context) error {
	bucket := s.cfg.Connection.BucketName
	if bucket == "" {
		return fmt.Errorf("bucket name is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check if bucket exists, bucket: %v, err: %w", bucket, err)
	}

	if !exists {
		s.logger.Info("bucket does not exist, creating it", nil, map[string]interface{}{
			"bucket": bucket,
		})
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{
			Region: s.cfg.Connection.Region,
		}); err != nil {
			return err
		}
	}

	return nil
}
