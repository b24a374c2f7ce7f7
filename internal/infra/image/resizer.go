package image

import (
	"bytes"
	stdimage "image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"

	domainerrors "github.com/kevindev10/ecommerce-api/internal/domain/errors"
	"github.com/kevindev10/ecommerce-api/internal/domain/service"
)

// resizer normalizes uploaded images with the imaging package. Images
// larger than the configured dimension are scaled down, smaller ones pass
// through untouched. Only JPEG and PNG uploads are accepted.
type resizer struct{}

// NewResizer is the constructor for resizer.
func NewResizer() service.ImageProcessor {
	return &resizer{}
}

// Normalize decodes the uploaded image, scales it to fit within
// maxDimension on both axes, and re-encodes it in its original format.
func (r *resizer) Normalize(src io.Reader, maxDimension int) (io.Reader, error) {
	img, format, err := stdimage.Decode(src)
	if err != nil {
		return nil, domainerrors.ErrUnsupportedImage.WrapMessage("file is not a valid image")
	}

	var encodeFormat imaging.Format
	switch format {
	case "jpeg":
		encodeFormat = imaging.JPEG
	case "png":
		encodeFormat = imaging.PNG
	default:
		return nil, domainerrors.ErrUnsupportedImage.WrapMessage("only JPEG and PNG images are supported")
	}

	bounds := img.Bounds()
	if maxDimension > 0 && (bounds.Dx() > maxDimension || bounds.Dy() > maxDimension) {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, encodeFormat); err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("failed to encode image")
	}

	return &buf, nil
}
