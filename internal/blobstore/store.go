// Package blobstore holds receipt files attached to transactions. Rows in
// the attachments table reference blobs by the opaque key returned from Save.
package blobstore

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Store is the persistence contract for attachment payloads. Keys are
// generated by Save and must be treated as opaque by callers.
type Store interface {
	Save(ctx context.Context, key string, r io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// NewKey builds a storage key partitioned by upload month so disk and
// bucket listings stay manageable. ext includes the leading dot.
func NewKey(now time.Time, ext string) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("generating blob key: %w", err)
	}
	return path.Join("receipts", now.Format("2006"), now.Format("01"), id.String()+ext), nil
}
