// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"image"

	"exalum/internal/domain/entity"
)

// CatalogUsecase defines the interface for public catalog operations.
type CatalogUsecase interface {
	// ListCatalog returns the filtered catalog together with the distinct
	// type and alloy values of the full catalog, for building filter menus.
	ListCatalog(ctx context.Context, input *CatalogFilterInput) (*CatalogOutput, error)

	// SearchByPhoto reduces the decoded photo to a search term and runs
	// the catalog search with it.
	SearchByPhoto(ctx context.Context, photo image.Image) (*PhotoSearchOutput, error)
}

// --- Input DTOs ---

// CatalogFilterInput defines the catalog filters. Search matches the
// description or code case-insensitively; Type and Alloy match exactly, with
// the empty string or "todos" meaning no restriction.
type CatalogFilterInput struct {
	Search string `json:"busca" query:"busca"`
	Type   string `json:"tipo" query:"tipo"`
	Alloy  string `json:"liga" query:"liga"`
}

// --- Output DTOs ---

// CatalogOutput carries the filtered products plus the distinct filter values.
type CatalogOutput struct {
	Products []*entity.Product
	Types    []string
	Alloys   []string
}

// PhotoSearchOutput carries the derived term and the products matching it.
type PhotoSearchOutput struct {
	Term     string
	Products []*entity.Product
}
