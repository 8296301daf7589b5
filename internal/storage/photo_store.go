package storage

import (
	"context"
	"io"
)

// PhotoStore persists listing photos and hands back opaque keys. The rest of
// the system treats a key as a reference only; how and where bytes live is a
// storage concern.
type PhotoStore interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
