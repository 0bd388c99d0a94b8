package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

// fakeBlobStore keeps blobs in memory and records what was saved.
type fakeBlobStore struct {
	blobs   map[string][]byte
	saveErr error
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: map[string][]byte{}}
}

func (f *fakeBlobStore) Save(_ context.Context, key string, r io.Reader) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.blobs[key] = data
	return nil
}

func (f *fakeBlobStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	data, ok := f.blobs[key]
	if !ok {
		return nil, errors.New("blob not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeBlobStore) Delete(_ context.Context, key string) error {
	delete(f.blobs, key)
	return nil
}

func newAttachmentTestService(t *testing.T) (*AttachmentService, *fakeBlobStore, *storage.MockITransactionTable, *mockAttachmentTable) {
	t.Helper()
	blobs := newFakeBlobStore()
	mockTransactions := storage.NewMockITransactionTable(t)
	mockAttachments := &mockAttachmentTable{}
	store := &storage.Storage{Transactions: mockTransactions, Attachments: mockAttachments}
	now := func() time.Time { return time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC) }
	return NewAttachmentService(store, blobs, now), blobs, mockTransactions, mockAttachments
}

// mockAttachmentTable is a hand-rolled testify mock for IAttachmentTable.
type mockAttachmentTable struct {
	mock.Mock
}

func (m *mockAttachmentTable) FindByTransaction(ctx context.Context, ownerID, transactionID uuid.UUID) (*storage.Attachment, error) {
	args := m.Called(ctx, ownerID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Attachment), args.Error(1)
}

func (m *mockAttachmentTable) Insert(ctx context.Context, create *storage.AttachmentCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockAttachmentTable) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

// -- UploadAttachment tests --

func TestUploadAttachment_Success(t *testing.T) {
	svc, blobs, mockTransactions, mockAttachments := newAttachmentTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	content := "fake image bytes"

	mockTransactions.EXPECT().FindByID(mock.Anything, ownerID, txID).
		Return(&storage.Transaction{ID: txID, OwnerID: ownerID}, nil).Once()

	// No existing attachment, then the inserted row on re-read.
	mockAttachments.On("FindByTransaction", mock.Anything, ownerID, txID).
		Return(nil, storage.ErrNotFound).Once()
	mockAttachments.On("Insert", mock.Anything, mock.MatchedBy(func(c *storage.AttachmentCreate) bool {
		return c.OwnerID == ownerID &&
			c.TransactionID == txID &&
			c.OriginalName == "receipt.jpg" &&
			c.SizeBytes == int64(len(content)) &&
			strings.HasPrefix(c.StorageKey, "receipts/2026/03/") &&
			strings.HasSuffix(c.StorageKey, ".jpg")
	})).Return(uuid.Must(uuid.NewV4()), nil).Once()
	mockAttachments.On("FindByTransaction", mock.Anything, ownerID, txID).
		Return(&storage.Attachment{TransactionID: txID, OriginalName: "receipt.jpg"}, nil).Once()

	row, err := svc.UploadAttachment(context.Background(), ownerID, txID, "receipt.jpg", int64(len(content)), strings.NewReader(content))

	assert.NoError(t, err)
	assert.Equal(t, "receipt.jpg", row.OriginalName)
	assert.Len(t, blobs.blobs, 1)
	mockAttachments.AssertExpectations(t)
}

func TestUploadAttachment_RejectsExtension(t *testing.T) {
	svc, blobs, _, _ := newAttachmentTestService(t)

	_, err := svc.UploadAttachment(context.Background(), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()),
		"malware.exe", 100, strings.NewReader("nope"))

	var validation *ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, "file", validation.Field)
	assert.Empty(t, blobs.blobs, "nothing written before validation")
}

func TestUploadAttachment_RejectsOversize(t *testing.T) {
	svc, blobs, _, _ := newAttachmentTestService(t)

	_, err := svc.UploadAttachment(context.Background(), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()),
		"huge.pdf", MaxAttachmentSize+1, strings.NewReader("x"))

	var validation *ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Message, "5MB")
	assert.Empty(t, blobs.blobs)
}

func TestUploadAttachment_ExtensionCaseInsensitive(t *testing.T) {
	svc, _, mockTransactions, mockAttachments := newAttachmentTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockTransactions.EXPECT().FindByID(mock.Anything, ownerID, txID).
		Return(&storage.Transaction{ID: txID, OwnerID: ownerID}, nil).Once()
	mockAttachments.On("FindByTransaction", mock.Anything, ownerID, txID).
		Return(nil, storage.ErrNotFound).Once()
	mockAttachments.On("Insert", mock.Anything, mock.Anything).
		Return(uuid.Must(uuid.NewV4()), nil).Once()
	mockAttachments.On("FindByTransaction", mock.Anything, ownerID, txID).
		Return(&storage.Attachment{TransactionID: txID}, nil).Once()

	_, err := svc.UploadAttachment(context.Background(), ownerID, txID, "SCAN.PDF", 10, strings.NewReader("0123456789"))

	assert.NoError(t, err)
}

func TestUploadAttachment_DuplicateRejected(t *testing.T) {
	svc, blobs, mockTransactions, mockAttachments := newAttachmentTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockTransactions.EXPECT().FindByID(mock.Anything, ownerID, txID).
		Return(&storage.Transaction{ID: txID, OwnerID: ownerID}, nil).Once()
	mockAttachments.On("FindByTransaction", mock.Anything, ownerID, txID).
		Return(&storage.Attachment{TransactionID: txID}, nil).Once()

	_, err := svc.UploadAttachment(context.Background(), ownerID, txID, "again.png", 10, strings.NewReader("0123456789"))

	var validation *ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, "transaction_id", validation.Field)
	assert.Empty(t, blobs.blobs)
}

func TestUploadAttachment_InsertFailureRemovesBlob(t *testing.T) {
	svc, blobs, mockTransactions, mockAttachments := newAttachmentTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockTransactions.EXPECT().FindByID(mock.Anything, ownerID, txID).
		Return(&storage.Transaction{ID: txID, OwnerID: ownerID}, nil).Once()
	mockAttachments.On("FindByTransaction", mock.Anything, ownerID, txID).
		Return(nil, storage.ErrNotFound).Once()
	mockAttachments.On("Insert", mock.Anything, mock.Anything).
		Return(uuid.Nil, errors.New("connection refused")).Once()

	_, err := svc.UploadAttachment(context.Background(), ownerID, txID, "receipt.jpg", 10, strings.NewReader("0123456789"))

	assert.ErrorContains(t, err, "connection refused")
	assert.Empty(t, blobs.blobs, "orphaned blob cleaned up")
}

// -- Get / Delete tests --

func TestGetAttachment_StreamsBlob(t *testing.T) {
	svc, blobs, _, mockAttachments := newAttachmentTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	blobs.blobs["receipts/2026/03/abc.jpg"] = []byte("image data")

	mockAttachments.On("FindByTransaction", mock.Anything, ownerID, txID).
		Return(&storage.Attachment{
			TransactionID: txID,
			StorageKey:    "receipts/2026/03/abc.jpg",
			OriginalName:  "receipt.jpg",
		}, nil).Once()

	row, rc, err := svc.GetAttachment(context.Background(), ownerID, txID)

	assert.NoError(t, err)
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	assert.Equal(t, "image data", string(data))
	assert.Equal(t, "receipt.jpg", row.OriginalName)
}

func TestDeleteAttachment_RemovesBlobAndRow(t *testing.T) {
	svc, blobs, _, mockAttachments := newAttachmentTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	attachmentID := uuid.Must(uuid.NewV4())
	blobs.blobs["receipts/2026/03/abc.jpg"] = []byte("image data")

	mockAttachments.On("FindByTransaction", mock.Anything, ownerID, txID).
		Return(&storage.Attachment{
			ID:            attachmentID,
			TransactionID: txID,
			StorageKey:    "receipts/2026/03/abc.jpg",
		}, nil).Once()
	mockAttachments.On("Delete", mock.Anything, ownerID, attachmentID).Return(nil).Once()

	err := svc.DeleteAttachment(context.Background(), ownerID, txID)

	assert.NoError(t, err)
	assert.Empty(t, blobs.blobs)
	mockAttachments.AssertExpectations(t)
}
