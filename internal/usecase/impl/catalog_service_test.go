package impl

import (
	"context"
	"image"
	"image/color"
	"testing"

	"exalum/internal/domain/entity"
	mockRepo "exalum/internal/mocks/repository"
	mockSvc "exalum/internal/mocks/service"
	"exalum/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogFixtures holds all test dependencies for catalog service tests.
type catalogFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
	analyzer    *mockSvc.MockPhotoAnalyzer
}

func createTestCatalogService(t *testing.T) catalogFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	analyzer := mockSvc.NewMockPhotoAnalyzer(t)

	service := NewCatalogService(productRepo, analyzer, newDiscardLogger())

	return catalogFixtures{
		service:     service,
		productRepo: productRepo,
		analyzer:    analyzer,
	}
}

func catalogProducts() []*entity.Product {
	return []*entity.Product{
		{ID: uuid.New(), Code: "EX-1030", Description: "Perfil de aluminio branco 30x30", Type: "perfil", Alloy: "6063"},
		{ID: uuid.New(), Code: "EX-2040", Description: "Perfil de aluminio preto 40x40", Type: "perfil", Alloy: "6061"},
		{ID: uuid.New(), Code: "CH-0010", Description: "Chapa lisa natural", Type: "chapa", Alloy: "6063"},
		{ID: uuid.New(), Code: "TB-0500", Description: "Tubo redondo 50mm", Type: "", Alloy: ""},
	}
}

func TestCatalogService_ListCatalog_NoFilters(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	products := catalogProducts()
	fx.productRepo.EXPECT().List(ctx).Return(products, nil)

	output, err := fx.service.ListCatalog(ctx, &usecase.CatalogFilterInput{})

	require.NoError(t, err)
	assert.Len(t, output.Products, 4)
	assert.Equal(t, []string{"chapa", "perfil"}, output.Types)
	assert.Equal(t, []string{"6061", "6063"}, output.Alloys)
}

func TestCatalogService_ListCatalog_SearchMatchesDescriptionOrCode(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	products := catalogProducts()

	tests := []struct {
		name   string
		search string
		want   int
	}{
		{name: "description substring", search: "BRANCO", want: 1},
		{name: "code substring", search: "ch-00", want: 1},
		{name: "shared substring", search: "perfil", want: 2},
		{name: "no match", search: "inexistente", want: 0},
		{name: "whitespace only", search: "   ", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx.productRepo.EXPECT().List(ctx).Return(products, nil).Once()

			output, err := fx.service.ListCatalog(ctx, &usecase.CatalogFilterInput{Search: tt.search})

			require.NoError(t, err)
			assert.Len(t, output.Products, tt.want)
		})
	}
}

func TestCatalogService_ListCatalog_ExactFilters(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	products := catalogProducts()

	tests := []struct {
		name  string
		input *usecase.CatalogFilterInput
		want  int
	}{
		{name: "type", input: &usecase.CatalogFilterInput{Type: "perfil"}, want: 2},
		{name: "alloy", input: &usecase.CatalogFilterInput{Alloy: "6063"}, want: 2},
		{name: "type todos", input: &usecase.CatalogFilterInput{Type: "todos"}, want: 4},
		{name: "combined", input: &usecase.CatalogFilterInput{Type: "perfil", Alloy: "6061"}, want: 1},
		{name: "search and type", input: &usecase.CatalogFilterInput{Search: "aluminio", Type: "perfil"}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx.productRepo.EXPECT().List(ctx).Return(products, nil).Once()

			output, err := fx.service.ListCatalog(ctx, tt.input)

			require.NoError(t, err)
			assert.Len(t, output.Products, tt.want)
		})
	}
}

func TestCatalogService_ListCatalog_FilterValuesIgnoreCurrentFilter(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().List(ctx).Return(catalogProducts(), nil)

	// The distinct lists always reflect the whole catalog so the dropdowns
	// never shrink to the current selection.
	output, err := fx.service.ListCatalog(ctx, &usecase.CatalogFilterInput{Type: "chapa"})

	require.NoError(t, err)
	assert.Len(t, output.Products, 1)
	assert.Equal(t, []string{"chapa", "perfil"}, output.Types)
	assert.Equal(t, []string{"6061", "6063"}, output.Alloys)
}

func TestCatalogService_SearchByPhoto(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	photo := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})

	fx.analyzer.EXPECT().DeriveSearchTerm(photo).Return("branco brilhante")
	fx.productRepo.EXPECT().List(ctx).Return(catalogProducts(), nil)

	output, err := fx.service.SearchByPhoto(ctx, photo)

	require.NoError(t, err)
	assert.Equal(t, "branco brilhante", output.Term)
	assert.Empty(t, output.Products)
}

func TestCatalogService_SearchByPhoto_TermMatchesCatalog(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	photo := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})

	fx.analyzer.EXPECT().DeriveSearchTerm(photo).Return("branco")
	fx.productRepo.EXPECT().List(ctx).Return(catalogProducts(), nil)

	output, err := fx.service.SearchByPhoto(ctx, photo)

	require.NoError(t, err)
	require.Len(t, output.Products, 1)
	assert.Contains(t, output.Products[0].Description, "branco")
}
