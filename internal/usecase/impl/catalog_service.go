// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"image"
	"log/slog"
	"slices"
	"strings"

	"exalum/internal/domain/entity"
	"exalum/internal/domain/repository"
	"exalum/internal/domain/service"
	"exalum/internal/usecase"

	"github.com/pkg/errors"
)

// filterAll is the sentinel filter value meaning no restriction.
const filterAll = "todos"

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	analyzer    service.PhotoAnalyzer
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	productRepo repository.ProductRepository,
	analyzer service.PhotoAnalyzer,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: productRepo,
		analyzer:    analyzer,
		logger:      logger,
	}
}

// ListCatalog returns the filtered catalog plus the distinct filter values.
func (srv *catalogService) ListCatalog(ctx context.Context, input *usecase.CatalogFilterInput) (*usecase.CatalogOutput, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalog")
	}

	output := &usecase.CatalogOutput{
		Products: filterProducts(products, input),
		Types:    distinctValues(products, func(p *entity.Product) string { return p.Type }),
		Alloys:   distinctValues(products, func(p *entity.Product) string { return p.Alloy }),
	}

	return output, nil
}

// SearchByPhoto derives a search term from the photo and reuses the catalog
// search with it.
func (srv *catalogService) SearchByPhoto(ctx context.Context, photo image.Image) (*usecase.PhotoSearchOutput, error) {
	term := srv.analyzer.DeriveSearchTerm(photo)
	srv.logger.Info("Photo search term derived", "term", term)

	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalog for photo search")
	}

	return &usecase.PhotoSearchOutput{
		Term:     term,
		Products: filterProducts(products, &usecase.CatalogFilterInput{Search: term}),
	}, nil
}

// filterProducts applies the search and exact-match filters. The search term
// matches the description or code case-insensitively.
func filterProducts(products []*entity.Product, input *usecase.CatalogFilterInput) []*entity.Product {
	if input == nil {
		return products
	}

	search := strings.ToLower(strings.TrimSpace(input.Search))

	filtered := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(product.Description), search) &&
			!strings.Contains(strings.ToLower(product.Code), search) {
			continue
		}
		if !matchesExact(product.Type, input.Type) {
			continue
		}
		if !matchesExact(product.Alloy, input.Alloy) {
			continue
		}

		filtered = append(filtered, product)
	}

	return filtered
}

// matchesExact applies an exact-match filter where the empty string and the
// "todos" sentinel both mean no restriction.
func matchesExact(value, filter string) bool {
	if filter == "" || filter == filterAll {
		return true
	}

	return value == filter
}

// distinctValues collects the sorted distinct non-empty values of one field.
func distinctValues(products []*entity.Product, field func(*entity.Product) string) []string {
	seen := make(map[string]struct{}, len(products))
	values := make([]string, 0, len(products))
	for _, product := range products {
		v := field(product)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	slices.Sort(values)

	return values
}
