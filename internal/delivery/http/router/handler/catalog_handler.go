package handler

import (
	"io"
	"log/slog"
	"net/http"

	"exalum/config"
	"exalum/internal/delivery/http/response"
	domainerrors "exalum/internal/domain/errors"
	"exalum/internal/infra/imaging"
	"exalum/internal/usecase"

	"github.com/labstack/echo/v4"
)

// defaultMaxPhotoBytes bounds photo uploads when the config leaves the limit
// unset.
const defaultMaxPhotoBytes = 10 * 1024 * 1024

// CatalogHandler serves the public product catalog.
type CatalogHandler struct {
	catalogUC     usecase.CatalogUsecase
	maxPhotoBytes int64
	logger        *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(catalogUC usecase.CatalogUsecase, cfg *config.Config, logger *slog.Logger) *CatalogHandler {
	maxPhotoBytes := int64(defaultMaxPhotoBytes)
	if cfg.Catalog != nil && cfg.Catalog.MaxPhotoBytes > 0 {
		maxPhotoBytes = cfg.Catalog.MaxPhotoBytes
	}

	return &CatalogHandler{
		catalogUC:     catalogUC,
		maxPhotoBytes: maxPhotoBytes,
		logger:        logger,
	}
}

// ListCatalog handles GET /api/catalogo.
func (h *CatalogHandler) ListCatalog(c echo.Context) error {
	input := new(usecase.CatalogFilterInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	output, err := h.catalogUC.ListCatalog(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"produtos": toProductDTOs(output.Products),
		"tipos":    output.Types,
		"ligas":    output.Alloys,
	}, "")
}

// SearchByPhoto handles POST /api/busca-por-foto.
func (h *CatalogHandler) SearchByPhoto(c echo.Context) error {
	fileHeader, err := c.FormFile("foto")
	if err != nil {
		return domainerrors.ErrPhotoMissing
	}
	if fileHeader.Size > h.maxPhotoBytes {
		return domainerrors.ErrPhotoTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domainerrors.ErrPhotoUnreadable
	}
	defer file.Close()

	// The declared size is already checked; the extra byte catches clients
	// lying about it.
	data, err := io.ReadAll(io.LimitReader(file, h.maxPhotoBytes+1))
	if err != nil {
		return domainerrors.ErrPhotoUnreadable
	}
	if int64(len(data)) > h.maxPhotoBytes {
		return domainerrors.ErrPhotoTooLarge
	}

	img, err := imaging.DecodePhoto(data)
	if err != nil {
		return err
	}

	output, err := h.catalogUC.SearchByPhoto(c.Request().Context(), img)
	if err != nil {
		return err
	}
	h.logger.Debug("Photo search served", "term", output.Term, "matches", len(output.Products))

	return response.Success(c, http.StatusOK, map[string]any{
		"termo":    output.Term,
		"produtos": toProductDTOs(output.Products),
	}, "")
}
