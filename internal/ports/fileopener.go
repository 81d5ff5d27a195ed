package ports

import (
	"context"
	"io"
)

// Meta describes an opened source file.
type Meta struct {
	Source      string
	ContentType string
	Size        int64
	Bucket      string
	Key         string
}

// FileOpener resolves a file path (s3://, https://, or bare key) into a
// readable stream.
type FileOpener interface {
	Open(ctx context.Context, filePath string) (io.ReadCloser, Meta, error)
}
