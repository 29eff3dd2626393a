package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(&types.NoSuchKey{}))
	assert.True(t, isNotFound(fmt.Errorf("download: %w", &types.NotFound{})))
	assert.False(t, isNotFound(errors.New("access denied")))
}

func TestNewStorageService(t *testing.T) {
	svc, err := NewStorageService(context.Background(), ServiceConfig{
		S3BucketName:      "medauth",
		S3Endpoint:        "http://localhost:9000",
		S3AccessKeyID:     "key",
		S3SecretAccessKey: "secret",
	})
	require.NoError(t, err)

	client, ok := svc.(*s3Client)
	require.True(t, ok)
	assert.Equal(t, "medauth", client.bucket)
	assert.NotNil(t, client.uploader)
	assert.NotNil(t, client.downloader)
}
