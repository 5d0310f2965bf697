// Package imaging implements the photo classifier used by the catalog's
// photo search. It reduces an uploaded photo to a textual search term built
// from the image's dominant color and finish.
package imaging

import (
	"bytes"
	"image"

	// Registered decoders for the accepted photo upload formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	domainerrors "exalum/internal/domain/errors"
	"exalum/internal/domain/service"
)

// fallbackTerm is returned when neither the color nor the finish classifier
// fires.
const fallbackTerm = "aluminio"

const (
	brightFinishThreshold = 180
	matteFinishThreshold  = 80
)

// colorAnalyzer is a concrete implementation of the PhotoAnalyzer interface.
type colorAnalyzer struct{}

// NewColorAnalyzer is the constructor for colorAnalyzer.
func NewColorAnalyzer() service.PhotoAnalyzer {
	return &colorAnalyzer{}
}

// DecodePhoto decodes an uploaded photo. The format is sniffed from the
// payload; jpeg, png and gif are accepted.
func DecodePhoto(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, domainerrors.ErrPhotoUnreadable
	}

	return img, nil
}

// DeriveSearchTerm reduces the image to "<color> <finish>", dropping either
// part when its classifier does not fire and falling back to a fixed term
// when both are empty.
func (a *colorAnalyzer) DeriveSearchTerm(img image.Image) string {
	r, g, b := meanRGB(img)

	term := classifyColor(r, g, b)
	if finish := classifyFinish((r + g + b) / 3); finish != "" {
		if term != "" {
			term += " "
		}
		term += finish
	}

	if term == "" {
		return fallbackTerm
	}

	return term
}

// meanRGB averages the 8-bit channel values over every pixel.
func meanRGB(img image.Image) (int, int, int) {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0, 0, 0
	}

	var sumR, sumG, sumB int64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			sumR += int64(r >> 8)
			sumG += int64(g >> 8)
			sumB += int64(b >> 8)
		}
	}

	return int(sumR / int64(pixels)), int(sumG / int64(pixels)), int(sumB / int64(pixels))
}

// classifyColor maps a mean RGB triple to a color name. The rules are
// ordered and the first match wins; a triple matching none yields "".
func classifyColor(r, g, b int) string {
	switch {
	case r > 200 && g > 200 && b > 200:
		return "branco"
	case r < 50 && g < 50 && b < 50:
		return "preto"
	case r > 150 && g > 150 && b < 100:
		return "amarelo"
	case r > 150 && g < 100 && b < 100:
		return "vermelho"
	case r < 100 && g > 150 && b < 100:
		return "verde"
	case r < 100 && g < 100 && b > 150:
		return "azul"
	case r > 100 && g > 100 && b > 100:
		return "cinza"
	case r > 150 && g > 100 && b < 100:
		return "laranja"
	case r > 100 && g < 100 && b > 100:
		return "roxo"
	case r > 120 && g > 80 && b < 80:
		return "marrom"
	default:
		return ""
	}
}

// classifyFinish maps the mean brightness to a finish name, or "" for the
// mid range.
func classifyFinish(brightness int) string {
	switch {
	case brightness > brightFinishThreshold:
		return "brilhante"
	case brightness < matteFinishThreshold:
		return "fosco"
	default:
		return ""
	}
}
