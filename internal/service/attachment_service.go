package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/moneybook-labs/accountbook-server/internal/blobstore"
	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

// MaxAttachmentSize caps receipt uploads at 5 MiB.
const MaxAttachmentSize = 5 << 20

var allowedAttachmentExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".pdf":  true,
}

// AttachmentService manages receipt files attached to ledger entries.
// Validation runs before any byte reaches the blob store, so a rejected
// upload leaves nothing behind.
type AttachmentService struct {
	storage *storage.Storage
	blobs   blobstore.Store
	now     func() time.Time
}

// NewAttachmentService creates a new AttachmentService.
func NewAttachmentService(store *storage.Storage, blobs blobstore.Store, now func() time.Time) *AttachmentService {
	return &AttachmentService{storage: store, blobs: blobs, now: now}
}

// UploadAttachment stores a receipt for the given ledger entry. Each entry
// holds at most one attachment; uploading to an entry that already has one
// fails validation.
func (s *AttachmentService) UploadAttachment(ctx context.Context, ownerID, transactionID uuid.UUID, filename string, size int64, r io.Reader) (*storage.Attachment, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedAttachmentExts[ext] {
		return nil, &ValidationError{Field: "file", Message: "only jpg, jpeg, png, gif, and pdf files are allowed"}
	}
	if size <= 0 {
		return nil, &ValidationError{Field: "file", Message: "must not be empty"}
	}
	if size > MaxAttachmentSize {
		return nil, &ValidationError{Field: "file", Message: "must not exceed 5MB"}
	}

	if _, err := s.storage.Transactions.FindByID(ctx, ownerID, transactionID); err != nil {
		return nil, err
	}
	if _, err := s.storage.Attachments.FindByTransaction(ctx, ownerID, transactionID); err == nil {
		return nil, &ValidationError{Field: "transaction_id", Message: "transaction already has an attachment"}
	} else if err != storage.ErrNotFound {
		return nil, err
	}

	key, err := blobstore.NewKey(s.now(), ext)
	if err != nil {
		return nil, err
	}

	// LimitReader guards against a lying Content-Length.
	if err := s.blobs.Save(ctx, key, io.LimitReader(r, MaxAttachmentSize)); err != nil {
		return nil, fmt.Errorf("storing attachment: %w", err)
	}

	if _, err := s.storage.Attachments.Insert(ctx, &storage.AttachmentCreate{
		OwnerID:       ownerID,
		TransactionID: transactionID,
		StorageKey:    key,
		OriginalName:  filepath.Base(filename),
		SizeBytes:     size,
	}); err != nil {
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			logrus.WithField("storage_key", key).WithError(delErr).Warn("failed to remove orphaned blob")
		}
		return nil, fmt.Errorf("recording attachment: %w", err)
	}

	return s.storage.Attachments.FindByTransaction(ctx, ownerID, transactionID)
}

// GetAttachment returns the receipt metadata and an open reader for its
// content. The caller closes the reader.
func (s *AttachmentService) GetAttachment(ctx context.Context, ownerID, transactionID uuid.UUID) (*storage.Attachment, io.ReadCloser, error) {
	row, err := s.storage.Attachments.FindByTransaction(ctx, ownerID, transactionID)
	if err != nil {
		return nil, nil, err
	}

	rc, err := s.blobs.Open(ctx, row.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("opening attachment: %w", err)
	}
	return row, rc, nil
}

// DeleteAttachment removes a receipt's blob and metadata row.
func (s *AttachmentService) DeleteAttachment(ctx context.Context, ownerID, transactionID uuid.UUID) error {
	row, err := s.storage.Attachments.FindByTransaction(ctx, ownerID, transactionID)
	if err != nil {
		return err
	}

	if err := s.blobs.Delete(ctx, row.StorageKey); err != nil {
		return fmt.Errorf("deleting attachment blob: %w", err)
	}
	return s.storage.Attachments.Delete(ctx, ownerID, row.ID)
}
