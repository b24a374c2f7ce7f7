package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevindev10/ecommerce-api/config"
)

func newTestService(size int, level string) *qrcodeService {
	cfg := &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 size,
			ErrorCorrectionLevel: level,
		},
	}

	return NewQRCodeService(cfg).(*qrcodeService)
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.size, tt.errorCorrectionLevel)
			assert.Equal(t, tt.size, svc.size)
		})
	}
}

func TestGenerateLinkQR(t *testing.T) {
	svc := newTestService(256, "M")

	link := "http://localhost:8000/verification?token=abc123"
	pngBytes, err := svc.GenerateLinkQR(link)
	require.NoError(t, err)
	require.NotEmpty(t, pngBytes)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestGenerateLinkQRDefaults(t *testing.T) {
	svc := NewQRCodeService(&config.Config{}).(*qrcodeService)

	pngBytes, err := svc.GenerateLinkQR("http://localhost:8000/verification?token=xyz")
	require.NoError(t, err)
	assert.NotEmpty(t, pngBytes)
}
