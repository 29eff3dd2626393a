/*
Package storage talks to S3-compatible object storage.

The credential store uses it to keep the users file as a single object when
the server runs without a persistent local disk.
*/
package storage

import (
	"context"
	"errors"
)

// ErrObjectNotFound is returned by GetObject when the key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// ServiceConfig holds the connection settings of the storage service.
type ServiceConfig struct {
	S3BucketName      string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Region          string
}

// StorageService reads and writes whole objects.
type StorageService interface {
	// GetObject returns the content of key, or ErrObjectNotFound.
	GetObject(ctx context.Context, key string) ([]byte, error)

	// PutObject replaces the content of key.
	PutObject(ctx context.Context, key string, body []byte, contentType string) error
}

// NewStorageService returns the S3 implementation of StorageService.
func NewStorageService(ctx context.Context, cfg ServiceConfig) (StorageService, error) {
	return newS3Client(ctx, cfg)
}
