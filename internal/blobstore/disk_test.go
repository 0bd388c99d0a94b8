package blobstore

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestDiskStore(t *testing.T) *DiskStore {
	t.Helper()
	store, err := NewDiskStore(t.TempDir())
	assert.NoError(t, err)
	return store
}

func TestDiskStore_SaveAndOpen(t *testing.T) {
	store := newTestDiskStore(t)
	ctx := context.Background()

	err := store.Save(ctx, "receipts/2026/03/abc.jpg", strings.NewReader("jpeg bytes"))
	assert.NoError(t, err)

	rc, err := store.Open(ctx, "receipts/2026/03/abc.jpg")
	assert.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	assert.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(content))
}

func TestDiskStore_Delete(t *testing.T) {
	store := newTestDiskStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, "receipts/2026/03/gone.pdf", strings.NewReader("pdf")))
	assert.NoError(t, store.Delete(ctx, "receipts/2026/03/gone.pdf"))

	_, err := store.Open(ctx, "receipts/2026/03/gone.pdf")
	assert.Error(t, err)
}

func TestDiskStore_DeleteMissingIsNoop(t *testing.T) {
	store := newTestDiskStore(t)

	assert.NoError(t, store.Delete(context.Background(), "receipts/2026/03/never-existed.png"))
}

func TestDiskStore_RejectsEscapingKeys(t *testing.T) {
	store := newTestDiskStore(t)
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, "../outside.jpg", strings.NewReader("x")))
	assert.Error(t, store.Save(ctx, "/etc/passwd", strings.NewReader("x")))

	_, err := store.Open(ctx, "../outside.jpg")
	assert.Error(t, err)
}

func TestNewKey(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	key, err := NewKey(now, ".jpg")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "receipts/2026/03/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	other, err := NewKey(now, ".jpg")
	assert.NoError(t, err)
	assert.NotEqual(t, key, other)
}
