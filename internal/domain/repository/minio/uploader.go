package minio

import (
	"context"
	"io"
)

// UploadResult describes one object written to storage.
type UploadResult struct {
	URL  string
	Type string
	Size int64
}

type Uploader interface {
	// Upload streams body into the bucket under a fresh object name.
	// declaredType is the client-sent content type, consulted only when
	// detection from the bytes is inconclusive.
	Upload(ctx context.Context, body io.Reader, declaredType string) (UploadResult, error)
}
