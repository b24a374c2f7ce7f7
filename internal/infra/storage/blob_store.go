package storage

import (
	"context"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"

	"github.com/kevindev10/ecommerce-api/config"
	"github.com/kevindev10/ecommerce-api/internal/domain/lifecycle"
	"github.com/kevindev10/ecommerce-api/internal/domain/service"
)

// blobStore implements service.FileStore on top of a gocloud blob bucket.
// The bucket URL decides the backing store, a local directory in
// development (file://) and an object store in production.
type blobStore struct {
	bucket *blob.Bucket
}

// NewBlobStore opens the configured bucket and registers its shutdown hook.
func NewBlobStore(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (service.FileStore, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("closing storage bucket")

			return bucket.Close()
		},
	})

	return &blobStore{bucket: bucket}, nil
}

// Save writes the reader's content to the bucket under the given key,
// replacing any existing object.
func (s *blobStore) Save(ctx context.Context, key string, contentType string, r io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return errors.Wrap(err, "failed to write file to bucket")
	}

	if err := w.Close(); err != nil {
		return errors.Wrap(err, "failed to finalize bucket write")
	}

	return nil
}

// Delete removes the object under the given key. Missing objects are not
// treated as an error so callers can delete previous images blindly.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return errors.Wrap(err, "failed to check bucket object")
	}
	if !exists {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete bucket object")
	}

	return nil
}
