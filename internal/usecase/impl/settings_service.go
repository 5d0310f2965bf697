package impl

import (
	"context"
	"log/slog"
	"strings"

	"exalum/config"
	"exalum/internal/domain/entity"
	domainerrors "exalum/internal/domain/errors"
	"exalum/internal/domain/repository"
	"exalum/internal/domain/service"
	"exalum/internal/usecase"

	"github.com/pkg/errors"
)

// catalogPath is appended to the configured base URL to form the public
// catalog share link.
const catalogPath = "/catalogo"

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	settingsRepo repository.SettingsRepository
	qrSvc        service.QRCodeService
	baseURL      string
	logger       *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(
	settingsRepo repository.SettingsRepository,
	qrSvc service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SettingsUsecase {
	baseURL := ""
	if cfg.QRCode != nil {
		baseURL = cfg.QRCode.BaseURL
	}

	return &settingsService{
		settingsRepo: settingsRepo,
		qrSvc:        qrSvc,
		baseURL:      baseURL,
		logger:       logger,
	}
}

// GetSettings returns the single company configuration row.
func (srv *settingsService) GetSettings(ctx context.Context) (*entity.CompanySettings, error) {
	settings, err := srv.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return nil, domainerrors.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to get settings")
	}

	return settings, nil
}

// UpdateSettings overwrites the editable fields and returns the fresh row.
func (srv *settingsService) UpdateSettings(ctx context.Context, input *usecase.UpdateSettingsInput) (*entity.CompanySettings, error) {
	current, err := srv.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	current.CompanyName = strings.TrimSpace(input.CompanyName)
	current.TaxID = strings.TrimSpace(input.TaxID)
	current.Phone = strings.TrimSpace(input.Phone)
	current.Email = strings.TrimSpace(input.Email)
	current.Address = strings.TrimSpace(input.Address)
	current.LogoURL = strings.TrimSpace(input.LogoURL)

	if current.CompanyName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("company name must not be empty")
	}

	if err := srv.settingsRepo.Update(ctx, current); err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return nil, domainerrors.ErrSettingsNotFound
		}

		return nil, err
	}
	srv.logger.Info("Company settings updated", "company", current.CompanyName)

	return srv.GetSettings(ctx)
}

// CatalogShareQR renders the public catalog link as a PNG QR code.
func (srv *settingsService) CatalogShareQR(_ context.Context) ([]byte, error) {
	png, err := srv.qrSvc.GenerateLinkQR(srv.CatalogShareLink())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate catalog QR code")
	}

	return png, nil
}

// CatalogShareLink returns the public catalog URL encoded by the QR code.
func (srv *settingsService) CatalogShareLink() string {
	return strings.TrimRight(srv.baseURL, "/") + catalogPath
}
