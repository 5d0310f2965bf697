package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"exalum/internal/domain/entity"
	domainerrors "exalum/internal/domain/errors"
	"exalum/internal/domain/repository"
	"exalum/internal/domain/service"
	"exalum/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	profileRepo repository.ProfileRepository
	roleRepo    repository.RoleRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	txManager repository.TransactionManager,
	accountRepo repository.AccountRepository,
	profileRepo repository.ProfileRepository,
	roleRepo repository.RoleRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		txManager:   txManager,
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		roleRepo:    roleRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

// IsAdmin consults the role table. The answer is never cached so that a
// revocation takes effect on the next request.
func (srv *adminService) IsAdmin(ctx context.Context, accountID uuid.UUID) (bool, error) {
	isAdmin, err := srv.roleRepo.HasRole(ctx, accountID, entity.RoleAdmin)
	if err != nil {
		return false, errors.Wrap(err, "failed to check admin role")
	}

	return isAdmin, nil
}

// ListAdmins joins the admin role rows with their profiles and accounts,
// newest first.
func (srv *adminService) ListAdmins(ctx context.Context) ([]*entity.AdminUser, error) {
	ids, err := srv.roleRepo.ListUserIDs(ctx, entity.RoleAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admin role holders")
	}
	if len(ids) == 0 {
		return []*entity.AdminUser{}, nil
	}

	accounts, err := srv.accountRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load admin accounts")
	}
	profiles, err := srv.profileRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load admin profiles")
	}

	profilesByID := make(map[uuid.UUID]*entity.Profile, len(profiles))
	for _, profile := range profiles {
		profilesByID[profile.ID] = profile
	}

	admins := make([]*entity.AdminUser, 0, len(accounts))
	for _, account := range accounts {
		admin := &entity.AdminUser{
			ID:        account.ID,
			Email:     account.Email,
			CreatedAt: account.CreatedAt,
		}
		if profile, ok := profilesByID[account.ID]; ok {
			admin.FullName = profile.FullName
		}
		admins = append(admins, admin)
	}

	sort.Slice(admins, func(i, j int) bool {
		return admins[i].CreatedAt.After(admins[j].CreatedAt)
	})

	return admins, nil
}

// CreateAdmin creates the account, its profile and the admin role row in one
// transaction.
func (srv *adminService) CreateAdmin(ctx context.Context, input *usecase.CreateAdminInput) (*entity.AdminUser, error) {
	email := strings.TrimSpace(input.Email)
	fullName := strings.TrimSpace(input.FullName)
	if email == "" || input.Password == "" || fullName == "" {
		return nil, domainerrors.ErrAdminFieldsMissing
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	account := &entity.Account{
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	profile := &entity.Profile{FullName: fullName}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewAccountRepository().Create(ctx, account, profile); err != nil {
			return err
		}

		return repoFactory.NewRoleRepository().Grant(ctx, account.ID, entity.RoleAdmin)
	})
	if err != nil {
		return nil, err
	}
	srv.logger.Info("Administrator created", "accountID", account.ID, "email", email)

	return &entity.AdminUser{
		ID:        account.ID,
		Email:     account.Email,
		FullName:  profile.FullName,
		CreatedAt: account.CreatedAt,
	}, nil
}

// DeleteAdmin revokes the admin role. The account and profile rows stay, so
// the action is reversible by granting the role again.
func (srv *adminService) DeleteAdmin(ctx context.Context, accountID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.NewRoleRepository()

		ids, err := roleRepo.ListUserIDs(ctx, entity.RoleAdmin)
		if err != nil {
			return errors.Wrap(err, "failed to list admin role holders")
		}

		holds := false
		for _, id := range ids {
			if id == accountID {
				holds = true

				break
			}
		}
		if !holds {
			return domainerrors.ErrAdminNotFound
		}
		if len(ids) <= 1 {
			return domainerrors.ErrLastAdmin
		}

		if err := roleRepo.Revoke(ctx, accountID, entity.RoleAdmin); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAdminNotFound
			}

			return err
		}

		return nil
	})
	if err != nil {
		return err
	}
	srv.logger.Info("Administrator role revoked", "accountID", accountID)

	return nil
}
