package blobstore

import (
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
)

// GCSStore keeps blobs in a Google Cloud Storage bucket. Credentials come
// from the environment (GOOGLE_APPLICATION_CREDENTIALS or workload identity).
type GCSStore struct {
	bucket *gcs.BucketHandle
}

var _ Store = (*GCSStore)(nil)

func NewGCSStore(ctx context.Context, bucket string) (*GCSStore, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}
	return &GCSStore{bucket: client.Bucket(bucket)}, nil
}

func (s *GCSStore) Save(ctx context.Context, key string, r io.Reader) error {
	w := s.bucket.Object(key).NewWriter(ctx)
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return fmt.Errorf("writing object %q: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing object %q: %w", key, err)
	}
	return nil
}

func (s *GCSStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.bucket.Object(key).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening object %q: %w", key, err)
	}
	return r, nil
}

func (s *GCSStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Object(key).Delete(ctx); err != nil && err != gcs.ErrObjectNotExist {
		return fmt.Errorf("deleting object %q: %w", key, err)
	}
	return nil
}
