package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solidImage(c color.RGBA, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	return img
}

func TestDeriveSearchTerm_SolidColors(t *testing.T) {
	analyzer := NewColorAnalyzer()

	tests := []struct {
		name  string
		pixel color.RGBA
		want  string
	}{
		{name: "white is bright by construction", pixel: color.RGBA{R: 255, G: 255, B: 255, A: 255}, want: "branco brilhante"},
		{name: "black is matte by construction", pixel: color.RGBA{R: 0, G: 0, B: 0, A: 255}, want: "preto fosco"},
		{name: "yellow", pixel: color.RGBA{R: 200, G: 200, B: 50, A: 255}, want: "amarelo"},
		{name: "red", pixel: color.RGBA{R: 200, G: 50, B: 50, A: 255}, want: "vermelho"},
		{name: "green", pixel: color.RGBA{R: 50, G: 200, B: 50, A: 255}, want: "verde"},
		{name: "blue", pixel: color.RGBA{R: 50, G: 50, B: 200, A: 255}, want: "azul"},
		{name: "gray", pixel: color.RGBA{R: 120, G: 120, B: 120, A: 255}, want: "cinza"},
		{name: "orange", pixel: color.RGBA{R: 200, G: 120, B: 50, A: 255}, want: "laranja"},
		{name: "purple", pixel: color.RGBA{R: 120, G: 50, B: 120, A: 255}, want: "roxo"},
		{name: "brown", pixel: color.RGBA{R: 130, G: 90, B: 60, A: 255}, want: "marrom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := solidImage(tt.pixel, 8, 8)
			assert.Equal(t, tt.want, analyzer.DeriveSearchTerm(img))
		})
	}
}

func TestDeriveSearchTerm_FinishBoundaries(t *testing.T) {
	analyzer := NewColorAnalyzer()

	// Mean 200 sits above the bright threshold and inside the gray band.
	bright := solidImage(color.RGBA{R: 200, G: 200, B: 200, A: 255}, 4, 4)
	assert.Equal(t, "cinza brilhante", analyzer.DeriveSearchTerm(bright))

	// Mean 180 is not strictly above the threshold, so no finish term.
	edge := solidImage(color.RGBA{R: 180, G: 180, B: 180, A: 255}, 4, 4)
	assert.Equal(t, "cinza", analyzer.DeriveSearchTerm(edge))

	// Mean 50 matches no color rule but sits below the matte threshold.
	matte := solidImage(color.RGBA{R: 50, G: 50, B: 50, A: 255}, 4, 4)
	assert.Equal(t, "fosco", analyzer.DeriveSearchTerm(matte))
}

func TestDeriveSearchTerm_Fallback(t *testing.T) {
	analyzer := NewColorAnalyzer()

	// Mid-brightness pixel outside every color band: r<=100 g>100 b in
	// (100,150] triggers neither the primaries nor the gray rule.
	img := solidImage(color.RGBA{R: 90, G: 130, B: 130, A: 255}, 4, 4)
	assert.Equal(t, "aluminio", analyzer.DeriveSearchTerm(img))
}

func TestDeriveSearchTerm_Deterministic(t *testing.T) {
	analyzer := NewColorAnalyzer()
	img := solidImage(color.RGBA{R: 37, G: 41, B: 43, A: 255}, 16, 16)

	first := analyzer.DeriveSearchTerm(img)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, analyzer.DeriveSearchTerm(img))
	}
}

func TestDecodePhoto(t *testing.T) {
	var buf bytes.Buffer
	err := png.Encode(&buf, solidImage(color.RGBA{R: 10, G: 20, B: 30, A: 255}, 2, 2))
	assert.NoError(t, err)

	img, err := DecodePhoto(buf.Bytes())
	assert.NoError(t, err)
	assert.NotNil(t, img)

	_, err = DecodePhoto([]byte("definitely not an image"))
	assert.Error(t, err)
}
