// Package storage provides the blob store used for project icon uploads.
// Implementations save raw bytes and hand back a public URL; everything
// else about the bytes is opaque to the caller.
package storage

import (
	"context"
	"fmt"

	"github.com/gabriel-vasile/mimetype"

	"project-catalog/internal/config"
)

// SaveResult identifies a stored blob.
type SaveResult struct {
	PublicURL  string
	StorageKey string
}

// BlobStore persists uploaded bytes under a generated key.
type BlobStore interface {
	Save(ctx context.Context, data []byte, mimeType, originalName string) (*SaveResult, error)
}

// New selects the blob store implementation from configuration.
func New(cfg config.StorageConfig) (BlobStore, error) {
	switch cfg.Driver {
	case config.StorageDriverLocal:
		return NewLocalStore(cfg.LocalDir, cfg.LocalPublicBase), nil
	case config.StorageDriverS3:
		return NewS3Store(cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// extensionFor maps a MIME type to a file extension, falling back to .bin
// for anything unrecognized.
func extensionFor(mimeType string) string {
	if m := mimetype.Lookup(mimeType); m != nil && m.Extension() != "" {
		return m.Extension()
	}
	return ".bin"
}
