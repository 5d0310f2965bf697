package impl

import (
	"context"
	"testing"
	"time"

	"exalum/internal/domain/entity"
	domainerrors "exalum/internal/domain/errors"
	"exalum/internal/domain/repository"
	mockRepo "exalum/internal/mocks/repository"
	mockSvc "exalum/internal/mocks/service"
	"exalum/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionFixtures holds all test dependencies for session service tests.
type sessionFixtures struct {
	service     usecase.SessionUsecase
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
	tokenSvc    *mockSvc.MockTokenService
}

func createTestSessionService(t *testing.T) sessionFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	service := NewSessionService(accountRepo, hasher, tokenSvc, newDiscardLogger())

	return sessionFixtures{
		service:     service,
		accountRepo: accountRepo,
		hasher:      hasher,
		tokenSvc:    tokenSvc,
	}
}

func TestSessionService_Login_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "admin@exalum.com.br",
		PasswordHash: "hashed_password",
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", account.PasswordHash).Return(true)
	fx.tokenSvc.EXPECT().GenerateAccessToken(account.ID).Return("signed.jwt.token", nil)
	fx.tokenSvc.EXPECT().AccessTokenDuration().Return(8 * time.Hour)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    account.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, int64(8*60*60), output.ExpiresIn)
}

func TestSessionService_Login_UnknownAccount(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "nobody@exalum.com.br").
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@exalum.com.br",
		Password: "whatever",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "admin@exalum.com.br",
		PasswordHash: "hashed_password",
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("wrong", account.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    account.Email,
		Password: "wrong",
	})

	assert.Nil(t, output)
	// Same error as the unknown-account case, so the two are
	// indistinguishable to the caller.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
