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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminFixtures holds all test dependencies for admin service tests.
type adminFixtures struct {
	service     usecase.AdminUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	profileRepo *mockRepo.MockProfileRepository
	roleRepo    *mockRepo.MockRoleRepository
	hasher      *mockSvc.MockPasswordHasher
}

func createTestAdminService(t *testing.T) adminFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	roleRepo := mockRepo.NewMockRoleRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewAdminService(
		txManager,
		accountRepo,
		profileRepo,
		roleRepo,
		hasher,
		newDiscardLogger(),
	)

	return adminFixtures{
		service:     service,
		txManager:   txManager,
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		roleRepo:    roleRepo,
		hasher:      hasher,
	}
}

func TestAdminService_IsAdmin(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.roleRepo.EXPECT().HasRole(ctx, accountID, entity.RoleAdmin).Return(true, nil).Once()
	isAdmin, err := fx.service.IsAdmin(ctx, accountID)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	// A second call hits the role table again; revocations must take
	// effect on the next request.
	fx.roleRepo.EXPECT().HasRole(ctx, accountID, entity.RoleAdmin).Return(false, nil).Once()
	isAdmin, err = fx.service.IsAdmin(ctx, accountID)
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestAdminService_ListAdmins_NewestFirst(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	older := &entity.Account{ID: uuid.New(), Email: "old@exalum.com.br", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &entity.Account{ID: uuid.New(), Email: "new@exalum.com.br", CreatedAt: time.Now()}
	ids := []uuid.UUID{older.ID, newer.ID}

	fx.roleRepo.EXPECT().ListUserIDs(ctx, entity.RoleAdmin).Return(ids, nil)
	fx.accountRepo.EXPECT().FindByIDs(ctx, ids).Return([]*entity.Account{older, newer}, nil)
	fx.profileRepo.EXPECT().FindByIDs(ctx, ids).Return([]*entity.Profile{
		{ID: older.ID, FullName: "Antiga Admin"},
		{ID: newer.ID, FullName: "Nova Admin"},
	}, nil)

	admins, err := fx.service.ListAdmins(ctx)

	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, newer.ID, admins[0].ID)
	assert.Equal(t, "Nova Admin", admins[0].FullName)
	assert.Equal(t, older.ID, admins[1].ID)
}

func TestAdminService_ListAdmins_Empty(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.roleRepo.EXPECT().ListUserIDs(ctx, entity.RoleAdmin).Return(nil, nil)

	admins, err := fx.service.ListAdmins(ctx)

	require.NoError(t, err)
	assert.Empty(t, admins)
}

func TestAdminService_CreateAdmin_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := &usecase.CreateAdminInput{
		Email:    "  nova@exalum.com.br  ",
		Password: "Password123!",
		FullName: "Nova Admin",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockRoleRepo := mockRepo.NewMockRoleRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockFactory.EXPECT().NewRoleRepository().Return(mockRoleRepo)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account"), mock.AnythingOfType("*entity.Profile")).
				Run(func(ctx context.Context, account *entity.Account, profile *entity.Profile) {
					assert.Equal(t, "nova@exalum.com.br", account.Email)
					assert.Equal(t, "hashed_password", account.PasswordHash)
					assert.True(t, account.IsAdmin)
					assert.Equal(t, "Nova Admin", profile.FullName)
					account.ID = uuid.New()
					profile.ID = account.ID
				}).
				Return(nil)

			mockRoleRepo.EXPECT().
				Grant(ctx, mock.AnythingOfType("uuid.UUID"), entity.RoleAdmin).
				Return(nil)

			return fn(mockFactory)
		})

	admin, err := fx.service.CreateAdmin(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "nova@exalum.com.br", admin.Email)
	assert.Equal(t, "Nova Admin", admin.FullName)
	assert.NotEqual(t, uuid.Nil, admin.ID)
}

func TestAdminService_CreateAdmin_MissingFields(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.CreateAdminInput
	}{
		{name: "empty email", input: &usecase.CreateAdminInput{Password: "x", FullName: "Nome"}},
		{name: "empty password", input: &usecase.CreateAdminInput{Email: "a@b.com", FullName: "Nome"}},
		{name: "blank full name", input: &usecase.CreateAdminInput{Email: "a@b.com", Password: "x", FullName: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			admin, err := fx.service.CreateAdmin(ctx, tt.input)

			assert.Nil(t, admin)
			assert.True(t, errors.Is(err, domainerrors.ErrAdminFieldsMissing))
		})
	}
}

func TestAdminService_CreateAdmin_DuplicateEmail(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := &usecase.CreateAdminInput{
		Email:    "nova@exalum.com.br",
		Password: "Password123!",
		FullName: "Nova Admin",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account"), mock.AnythingOfType("*entity.Profile")).
				Return(domainerrors.ErrAccountAlreadyExists)

			return fn(mockFactory)
		})

	admin, err := fx.service.CreateAdmin(ctx, input)

	assert.Nil(t, admin)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestAdminService_DeleteAdmin_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	target := uuid.New()
	other := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRoleRepo := mockRepo.NewMockRoleRepository(t)

			mockFactory.EXPECT().NewRoleRepository().Return(mockRoleRepo)
			mockRoleRepo.EXPECT().
				ListUserIDs(ctx, entity.RoleAdmin).
				Return([]uuid.UUID{target, other}, nil)
			mockRoleRepo.EXPECT().Revoke(ctx, target, entity.RoleAdmin).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteAdmin(ctx, target)

	require.NoError(t, err)
}

func TestAdminService_DeleteAdmin_LastAdminRefused(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	target := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRoleRepo := mockRepo.NewMockRoleRepository(t)

			mockFactory.EXPECT().NewRoleRepository().Return(mockRoleRepo)
			mockRoleRepo.EXPECT().
				ListUserIDs(ctx, entity.RoleAdmin).
				Return([]uuid.UUID{target}, nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteAdmin(ctx, target)

	assert.True(t, errors.Is(err, domainerrors.ErrLastAdmin))
}

func TestAdminService_DeleteAdmin_NotAHolder(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	target := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRoleRepo := mockRepo.NewMockRoleRepository(t)

			mockFactory.EXPECT().NewRoleRepository().Return(mockRoleRepo)
			mockRoleRepo.EXPECT().
				ListUserIDs(ctx, entity.RoleAdmin).
				Return([]uuid.UUID{uuid.New(), uuid.New()}, nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteAdmin(ctx, target)

	assert.True(t, errors.Is(err, domainerrors.ErrAdminNotFound))
}

func TestAdminService_DeleteAdmin_RevokeRaceMapsToNotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	target := uuid.New()
	other := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRoleRepo := mockRepo.NewMockRoleRepository(t)

			mockFactory.EXPECT().NewRoleRepository().Return(mockRoleRepo)
			mockRoleRepo.EXPECT().
				ListUserIDs(ctx, entity.RoleAdmin).
				Return([]uuid.UUID{target, other}, nil)
			mockRoleRepo.EXPECT().
				Revoke(ctx, target, entity.RoleAdmin).
				Return(repository.ErrAccountNotFound)

			return fn(mockFactory)
		})

	err := fx.service.DeleteAdmin(ctx, target)

	assert.True(t, errors.Is(err, domainerrors.ErrAdminNotFound))
}
