package impl

import (
	"context"
	"log/slog"

	domainerrors "exalum/internal/domain/errors"
	"exalum/internal/domain/repository"
	"exalum/internal/domain/service"
	"exalum/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	tokenSvc    service.TokenService
	logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	accountRepo repository.AccountRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		accountRepo: accountRepo,
		hasher:      hasher,
		tokenSvc:    tokenSvc,
		logger:      logger,
	}
}

// Login verifies the credentials and issues a signed access token. A missing
// account and a wrong password are indistinguishable to the caller.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.logger.Warn("Login rejected", "email", input.Email)

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenSvc.GenerateAccessToken(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}
	srv.logger.Info("Login succeeded", "accountID", account.ID)

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresIn:   int64(srv.tokenSvc.AccessTokenDuration().Seconds()),
	}, nil
}
