package service

import "io"

// ImageProcessor validates and normalizes uploaded images before storage.
type ImageProcessor interface {
	// Normalize decodes the image, scales it down so its longest side does not
	// exceed maxDimension, and re-encodes it as JPEG. Undecodable input yields
	// domain ErrUnsupportedImage.
	Normalize(r io.Reader, maxDimension int) (io.Reader, error)
}
