package repository

import (
	"context"
	"errors"

	"exalum/internal/domain/entity"
)

// ErrSettingsNotFound is returned when the configuration row is missing.
var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository defines the operations for the single-row company
// configuration.
type SettingsRepository interface {
	// Get retrieves the configuration row.
	Get(ctx context.Context) (*entity.CompanySettings, error)

	// Update overwrites the editable fields of the configuration row.
	Update(ctx context.Context, settings *entity.CompanySettings) error
}
