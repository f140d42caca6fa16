package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const iconsDir = "project-icons"

// LocalStore writes blobs under a directory on the local filesystem. It is
// the development default; the returned URLs assume the directory is served
// under publicBase.
type LocalStore struct {
	dir        string
	publicBase string
}

func NewLocalStore(dir, publicBase string) *LocalStore {
	return &LocalStore{
		dir:        dir,
		publicBase: strings.TrimSuffix(publicBase, "/"),
	}
}

func (s *LocalStore) Save(ctx context.Context, data []byte, mimeType, originalName string) (*SaveResult, error) {
	key := fmt.Sprintf("%s/%s%s", iconsDir, uuid.New().String(), extensionFor(mimeType))

	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write blob: %w", err)
	}

	return &SaveResult{
		PublicURL:  s.publicBase + "/" + key,
		StorageKey: key,
	}, nil
}
