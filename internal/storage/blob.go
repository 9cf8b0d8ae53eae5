// Package storage persists uploaded binary payloads (profile and post images)
// and hands back the reference path recorded on the owning row.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// BlobStore stores uploaded payloads under a caller-supplied name and returns
// the reference path to record. Implementations are not transactional with the
// database; callers own compensating cleanup.
type BlobStore interface {
	Store(name string, data []byte) (string, error)
	Delete(path string) error
}

// DiskStore is a BlobStore backed by a local directory. Stored files are
// served from under the /static URL prefix.
type DiskStore struct {
	root string
}

// NewDiskStore returns a DiskStore rooted at dir, creating it if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory %s: %w", dir, err)
	}
	return &DiskStore{root: dir}, nil
}

// Store writes data under name and returns the public reference path.
// The write goes to a uuid-suffixed temp file first and is renamed into
// place so readers never observe a partial file.
func (s *DiskStore) Store(name string, data []byte) (string, error) {
	name = filepath.Base(name)
	final := filepath.Join(s.root, name)
	tmp := final + "." + uuid.NewString() + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to finalize blob: %w", err)
	}

	return "/static/" + name, nil
}

// Delete removes a previously stored blob by its reference path. Missing
// files are not an error.
func (s *DiskStore) Delete(path string) error {
	name := filepath.Base(path)
	if name == "." || name == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
