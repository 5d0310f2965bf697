package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateLinkQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateLinkQR("https://catalogo.example.com/catalogo")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// The payload must be a decodable PNG of the requested size.
	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestQRCodeService_UnknownRecoveryLevelDefaultsToMedium(t *testing.T) {
	service := NewQRCodeService(128, "X")

	qrBytes, err := service.GenerateLinkQR("https://catalogo.example.com/catalogo")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}
