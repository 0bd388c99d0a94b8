package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore keeps blobs under a root directory on local disk. It is the
// default backend for single-node deployments.
type DiskStore struct {
	root string
}

var _ Store = (*DiskStore)(nil)

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating blob root %q: %w", root, err)
	}
	return &DiskStore{root: root}, nil
}

// resolve maps a key onto the root, rejecting keys that would escape it.
func (s *DiskStore) resolve(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return filepath.Join(s.root, cleaned), nil
}

func (s *DiskStore) Save(_ context.Context, key string, r io.Reader) error {
	dst, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating blob dir: %w", err)
	}
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating blob file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return fmt.Errorf("writing blob: %w", err)
	}
	return f.Close()
}

func (s *DiskStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	src, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("opening blob: %w", err)
	}
	return f, nil
}

func (s *DiskStore) Delete(_ context.Context, key string) error {
	dst, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting blob: %w", err)
	}
	return nil
}
