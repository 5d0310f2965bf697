package impl

import (
	"io"
	"log/slog"

	"exalum/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(baseURL string) *config.Config {
	return &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 256,
			ErrorCorrectionLevel: "M",
			BaseURL:              baseURL,
		},
	}
}
