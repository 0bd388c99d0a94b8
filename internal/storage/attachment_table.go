package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Attachment is the metadata row for a receipt blob. The blob itself lives
// in a blobstore.Store under StorageKey; each transaction has at most one.
type Attachment struct {
	ID            uuid.UUID `db:"id"`
	OwnerID       uuid.UUID `db:"user_id"`
	TransactionID uuid.UUID `db:"transaction_id"`
	StorageKey    string    `db:"storage_key"`
	OriginalName  string    `db:"original_name"`
	SizeBytes     int64     `db:"size_bytes"`
	UploadedAt    time.Time `db:"uploaded_at"`
}

// AttachmentCreate is the input for recording an uploaded receipt.
type AttachmentCreate struct {
	OwnerID       uuid.UUID
	TransactionID uuid.UUID
	StorageKey    string
	OriginalName  string
	SizeBytes     int64
}

// IAttachmentTable defines the interface for attachment metadata operations.
type IAttachmentTable interface {
	FindByTransaction(ctx context.Context, ownerID, transactionID uuid.UUID) (*Attachment, error)
	Insert(ctx context.Context, create *AttachmentCreate) (uuid.UUID, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// AttachmentsTable provides access to the attachments table.
type AttachmentsTable struct {
	exec bob.Executor
}

var _ IAttachmentTable = (*AttachmentsTable)(nil)

func NewAttachmentsTable(exec bob.Executor) *AttachmentsTable {
	return &AttachmentsTable{exec: exec}
}

const attachmentColumns = "id, user_id, transaction_id, storage_key, original_name, size_bytes, uploaded_at"

func (t *AttachmentsTable) FindByTransaction(ctx context.Context, ownerID, transactionID uuid.UUID) (*Attachment, error) {
	query := psql.Select(
		sm.Columns(psql.Raw(attachmentColumns)),
		sm.From("attachments"),
		sm.Where(psql.Quote("transaction_id").EQ(psql.Arg(transactionID))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Attachment]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (t *AttachmentsTable) Insert(ctx context.Context, create *AttachmentCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("attachments", "user_id", "transaction_id", "storage_key", "original_name", "size_bytes"),
		im.Values(psql.Arg(create.OwnerID, create.TransactionID, create.StorageKey, create.OriginalName, create.SizeBytes)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (t *AttachmentsTable) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := psql.Delete(
		dm.From("attachments"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(ownerID))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return err
	}
	return errIfNoRows(result)
}
