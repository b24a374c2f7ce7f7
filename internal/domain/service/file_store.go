package service

import (
	"context"
	"io"
)

// FileStore persists uploaded files under opaque keys.
type FileStore interface {
	// Save writes the content under the given key, overwriting any previous value.
	Save(ctx context.Context, key string, contentType string, r io.Reader) error

	// Delete removes the file stored under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
