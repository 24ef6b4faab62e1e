package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/minio/minio-go/v7"
)

// Put uploads an object and returns a presigned access URL for it. Rendered
// memes are small single-part PNGs, so no multipart handling is needed.
func (s *Store) Put(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, s.cfg.Connection.BucketName, objectName,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		return "", fmt.Errorf("storage: put %q failed: %w", objectName, err)
	}

	return s.PresignedGet(ctx, objectName)
}

// Get retrieves an object's contents as a byte slice.
func (s *Store) Get(ctx context.Context, objectName string) ([]byte, error) {
	reader, err := s.client.GetObject(ctx, s.cfg.Connection.BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("storage: get %q failed: %w", objectName, err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			s.logger.Error("failed to close object reader", err, map[string]interface{}{})
		}
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("storage: read %q failed: %w", objectName, err)
	}
	return data, nil
}

// PresignedGet generates a presigned GET URL for an already-stored object.
func (s *Store) PresignedGet(ctx context.Context, objectName string) (string, error) {
	presigned, err := s.client.PresignedGetObject(ctx, s.cfg.Connection.BucketName, objectName,
		s.cfg.Presigned.ExpiryDuration, nil)
	if err != nil {
		return "", fmt.Errorf("storage: presign %q failed: %w", objectName, err)
	}

	if s.cfg.Presigned.BaseURL != "" {
		return rewriteHost(presigned, s.cfg.Presigned.BaseURL)
	}
	return presigned.String(), nil
}

// rewriteHost replaces the host of a presigned URL with a custom base URL.
func rewriteHost(presigned *url.URL, baseURL string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid BaseURL format: %v", err)
	}

	final := *presigned
	final.Scheme = base.Scheme
	final.Host = base.Host
	if base.Path != "" && base.Path != "/" {
		final.Path = base.ResolveReference(&url.URL{Path: final.Path}).Path
	}
	return final.String(), nil
}
