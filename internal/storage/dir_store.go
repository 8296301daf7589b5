package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DirStore saves photos to disk under a base directory, for local deployments
// without object storage.
type DirStore struct {
	basePath string
}

// NewDirStore creates the base directory if missing.
func NewDirStore(basePath string) (*DirStore, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("photo dir is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create photo dir: %w", err)
	}
	return &DirStore{basePath: basePath}, nil
}

// Save writes a photo under the base directory.
func (d *DirStore) Save(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	out, err := os.Create(d.path(key))
	if err != nil {
		return fmt.Errorf("create photo file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, r); err != nil {
		return fmt.Errorf("write photo file: %w", err)
	}
	return nil
}

// Open reads a stored photo.
func (d *DirStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(d.path(key))
	if err != nil {
		return nil, fmt.Errorf("open photo file: %w", err)
	}
	return f, nil
}

// Delete removes a stored photo. Missing files are not an error.
func (d *DirStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(d.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete photo file: %w", err)
	}
	return nil
}

func (d *DirStore) path(key string) string {
	// keys are store-generated, but never trust them as paths
	return filepath.Join(d.basePath, filepath.Base(key))
}
