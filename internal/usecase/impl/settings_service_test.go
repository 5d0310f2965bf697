package impl

import (
	"context"
	"testing"

	"exalum/internal/domain/entity"
	domainerrors "exalum/internal/domain/errors"
	"exalum/internal/domain/repository"
	mockRepo "exalum/internal/mocks/repository"
	mockSvc "exalum/internal/mocks/service"
	"exalum/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// settingsFixtures holds all test dependencies for settings service tests.
type settingsFixtures struct {
	service      usecase.SettingsUsecase
	settingsRepo *mockRepo.MockSettingsRepository
	qrSvc        *mockSvc.MockQRCodeService
}

func createTestSettingsService(t *testing.T, baseURL string) settingsFixtures {
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	qrSvc := mockSvc.NewMockQRCodeService(t)

	service := NewSettingsService(settingsRepo, qrSvc, newTestConfig(baseURL), newDiscardLogger())

	return settingsFixtures{
		service:      service,
		settingsRepo: settingsRepo,
		qrSvc:        qrSvc,
	}
}

func storedSettings() *entity.CompanySettings {
	return &entity.CompanySettings{
		ID:          uuid.New(),
		CompanyName: "Exalum Aluminio",
		TaxID:       "12.345.678/0001-90",
		Phone:       "(11) 3333-4444",
		Email:       "contato@exalum.com.br",
	}
}

func TestSettingsService_GetSettings(t *testing.T) {
	fx := createTestSettingsService(t, "https://exalum.com.br")

	ctx := context.Background()
	stored := storedSettings()
	fx.settingsRepo.EXPECT().Get(ctx).Return(stored, nil)

	settings, err := fx.service.GetSettings(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, settings)
}

func TestSettingsService_GetSettings_MissingRow(t *testing.T) {
	fx := createTestSettingsService(t, "https://exalum.com.br")

	ctx := context.Background()
	fx.settingsRepo.EXPECT().Get(ctx).Return(nil, repository.ErrSettingsNotFound)

	settings, err := fx.service.GetSettings(ctx)

	assert.Nil(t, settings)
	assert.True(t, errors.Is(err, domainerrors.ErrSettingsNotFound))
}

func TestSettingsService_UpdateSettings_TrimsAndPersists(t *testing.T) {
	fx := createTestSettingsService(t, "https://exalum.com.br")

	ctx := context.Background()
	stored := storedSettings()

	fx.settingsRepo.EXPECT().Get(ctx).Return(stored, nil).Twice()
	fx.settingsRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.CompanySettings")).
		Run(func(ctx context.Context, settings *entity.CompanySettings) {
			assert.Equal(t, "Exalum Aluminio Ltda", settings.CompanyName)
			assert.Equal(t, "11 98888-7777", settings.Phone)
		}).
		Return(nil)

	settings, err := fx.service.UpdateSettings(ctx, &usecase.UpdateSettingsInput{
		CompanyName: "  Exalum Aluminio Ltda  ",
		Phone:       " 11 98888-7777 ",
	})

	require.NoError(t, err)
	assert.NotNil(t, settings)
}

func TestSettingsService_UpdateSettings_EmptyCompanyName(t *testing.T) {
	fx := createTestSettingsService(t, "https://exalum.com.br")

	ctx := context.Background()
	fx.settingsRepo.EXPECT().Get(ctx).Return(storedSettings(), nil)

	settings, err := fx.service.UpdateSettings(ctx, &usecase.UpdateSettingsInput{
		CompanyName: "   ",
	})

	assert.Nil(t, settings)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSettingsService_CatalogShareLink(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{name: "plain base", baseURL: "https://exalum.com.br", want: "https://exalum.com.br/catalogo"},
		{name: "trailing slash", baseURL: "https://exalum.com.br/", want: "https://exalum.com.br/catalogo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSettingsService(t, tt.baseURL)

			assert.Equal(t, tt.want, fx.service.CatalogShareLink())
		})
	}
}

func TestSettingsService_CatalogShareQR(t *testing.T) {
	fx := createTestSettingsService(t, "https://exalum.com.br")

	ctx := context.Background()
	fx.qrSvc.EXPECT().
		GenerateLinkQR("https://exalum.com.br/catalogo").
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	png, err := fx.service.CatalogShareQR(ctx)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
