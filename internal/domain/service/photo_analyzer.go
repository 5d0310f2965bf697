package service

import "image"

// PhotoAnalyzer derives a catalog search term from a product photo. The
// reduction is deterministic: identical pixel input always yields the same
// term.
type PhotoAnalyzer interface {
	// DeriveSearchTerm reduces the image to a color term and a finish term,
	// space-separated with the color first. When neither classifier fires it
	// returns the fixed fallback term.
	DeriveSearchTerm(img image.Image) string
}
