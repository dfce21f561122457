package ports

import (
	"context"
	"io"
)

// ImageStorage keeps uploaded dish images and returns their public URL.
type ImageStorage interface {
	Put(ctx context.Context, key string, contentType string, body io.Reader, size int64) (url string, err error)
}
