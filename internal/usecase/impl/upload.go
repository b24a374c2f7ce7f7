package impl

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/kevindev10/ecommerce-api/config"
	domainerrors "github.com/kevindev10/ecommerce-api/internal/domain/errors"
	"github.com/kevindev10/ecommerce-api/internal/domain/service"
	"github.com/kevindev10/ecommerce-api/internal/usecase"
)

const (
	defaultMaxUploadBytes = 5 << 20
	defaultMaxDimension   = 1024
)

var allowedImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// imageUploader validates, normalizes and stores uploaded images under a
// random filename. It is shared by the business logo and product image flows.
type imageUploader struct {
	processor    service.ImageProcessor
	store        service.FileStore
	maxBytes     int64
	maxDimension int
}

func newImageUploader(processor service.ImageProcessor, store service.FileStore, cfg *config.Config) *imageUploader {
	maxBytes := int64(defaultMaxUploadBytes)
	maxDimension := defaultMaxDimension

	if cfg != nil && cfg.Upload != nil {
		if cfg.Upload.MaxBytes > 0 {
			maxBytes = cfg.Upload.MaxBytes
		}
		if cfg.Upload.MaxDimension > 0 {
			maxDimension = cfg.Upload.MaxDimension
		}
	}

	return &imageUploader{
		processor:    processor,
		store:        store,
		maxBytes:     maxBytes,
		maxDimension: maxDimension,
	}
}

// storeImage returns the generated filename of the stored image.
func (u *imageUploader) storeImage(ctx context.Context, upload *usecase.UploadInput) (string, error) {
	if upload.Size > u.maxBytes {
		return "", domainerrors.ErrUploadTooLarge.WrapMessage("uploaded image exceeds the size limit")
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	contentType, ok := allowedImageExtensions[ext]
	if !ok {
		return "", domainerrors.ErrUnsupportedImage.WrapMessage("file extension must be jpg, jpeg or png")
	}

	normalized, err := u.processor.Normalize(upload.Content, u.maxDimension)
	if err != nil {
		return "", errors.Wrap(err, "failed to normalize uploaded image")
	}

	filename := uuid.NewString() + ext
	if err := u.store.Save(ctx, filename, contentType, normalized); err != nil {
		return "", errors.Wrap(err, "failed to store uploaded image")
	}

	return filename, nil
}

// deleteStoredImage removes a previously stored image unless it is one of the
// shared default placeholders.
func (u *imageUploader) deleteStoredImage(ctx context.Context, filename string, defaults ...string) error {
	if filename == "" {
		return nil
	}
	for _, d := range defaults {
		if filename == d {
			return nil
		}
	}

	return u.store.Delete(ctx, filename)
}
