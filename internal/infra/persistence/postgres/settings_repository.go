// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"exalum/internal/domain/entity"
	domainerrors "exalum/internal/domain/errors"
	"exalum/internal/domain/repository"
	"exalum/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get retrieves the single configuration row.
func (repo *settingsRepository) Get(ctx context.Context) (*entity.CompanySettings, error) {
	var settingsM model.SettingsModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to get settings")
	}

	return toSettingsDomain(&settingsM), nil
}

// Update overwrites the editable fields of the configuration row.
func (repo *settingsRepository) Update(ctx context.Context, settings *entity.CompanySettings) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SettingsModel{}).
		Where("id = ?", settings.ID).
		Updates(map[string]interface{}{
			"nome_empresa": settings.CompanyName,
			"cnpj":         settings.TaxID,
			"telefone":     settings.Phone,
			"email":        settings.Email,
			"endereco":     settings.Address,
			"logo_url":     settings.LogoURL,
		})

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required company information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update settings")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSettingsNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSettingsDomain converts a GORM SettingsModel to a domain CompanySettings entity.
func toSettingsDomain(data *model.SettingsModel) *entity.CompanySettings {
	if data == nil {
		return nil
	}

	return &entity.CompanySettings{
		ID:          data.ID,
		CompanyName: data.CompanyName,
		TaxID:       data.TaxID,
		Phone:       data.Phone,
		Email:       data.Email,
		Address:     data.Address,
		LogoURL:     data.LogoURL,
		UpdatedAt:   data.UpdatedAt,
	}
}
