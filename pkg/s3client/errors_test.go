package s3client

import (
	"errors"
	"fmt"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsNotFoundError(errors.New("connection reset")))

	// Wrapped sentinels, as returned by New when the bucket is missing.
	assert.True(t, IsNotFoundError(fmt.Errorf("bucket media-exports: %w", ErrBucketNotFound)))
	assert.True(t, IsNotFoundError(ErrObjectNotFound))

	// minio responses, as surfaced by StatObject for a missing key.
	assert.True(t, IsNotFoundError(minio.ErrorResponse{Code: "NoSuchKey", Message: "key does not exist"}))
	assert.True(t, IsNotFoundError(minio.ErrorResponse{Code: "NoSuchBucket"}))
	assert.False(t, IsNotFoundError(minio.ErrorResponse{Code: "AccessDenied"}))
}

func TestIsAuthError(t *testing.T) {
	assert.False(t, IsAuthError(nil))
	assert.False(t, IsAuthError(ErrObjectNotFound))

	assert.True(t, IsAuthError(ErrInvalidCredentials))
	assert.True(t, IsAuthError(fmt.Errorf("connecting: %w", ErrPermissionDenied)))
	assert.True(t, IsAuthError(minio.ErrorResponse{Code: "SignatureDoesNotMatch"}))
	assert.True(t, IsAuthError(errors.New("401 unauthorized")))
	assert.False(t, IsAuthError(minio.ErrorResponse{Code: "SlowDown"}))
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "", FormatError(nil))
	assert.Equal(t, "plain failure", FormatError(errors.New("plain failure")))
	assert.Equal(t, "S3 error: bucket does not exist (code: NoSuchBucket)",
		FormatError(minio.ErrorResponse{Code: "NoSuchBucket", Message: "bucket does not exist"}))
}
