package storage

import (
	"context"
	"io"
)

// Uploader stores an uploaded asset (hero image, CV) and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (publicURL string, err error)
}
