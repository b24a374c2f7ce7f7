package image

import (
	"bytes"
	stdimage "image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/kevindev10/ecommerce-api/internal/domain/errors"
)

func encodeTestPNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()

	img := stdimage.NewRGBA(stdimage.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return &buf
}

func TestNormalizeScalesDownLargeImages(t *testing.T) {
	r := NewResizer()

	out, err := r.Normalize(encodeTestPNG(t, 800, 400), 200)
	require.NoError(t, err)

	decoded, format, err := stdimage.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 200, decoded.Bounds().Dx())
	assert.Equal(t, 100, decoded.Bounds().Dy())
}

func TestNormalizeKeepsSmallImages(t *testing.T) {
	r := NewResizer()

	out, err := r.Normalize(encodeTestPNG(t, 64, 48), 200)
	require.NoError(t, err)

	decoded, _, err := stdimage.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 64, decoded.Bounds().Dx())
	assert.Equal(t, 48, decoded.Bounds().Dy())
}

func TestNormalizeRejectsNonImageContent(t *testing.T) {
	r := NewResizer()

	_, err := r.Normalize(strings.NewReader("definitely not an image"), 200)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUnsupportedImage.ErrorCode(), appErr.ErrorCode())
}
