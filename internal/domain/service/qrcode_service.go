package service

// QRCodeService generates QR code images for sharing links.
type QRCodeService interface {
	// GenerateLinkQR encodes the given URL into a PNG QR code.
	GenerateLinkQR(url string) ([]byte, error)
}
