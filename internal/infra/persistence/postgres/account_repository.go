// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"exalum/internal/domain/entity"
	domainerrors "exalum/internal/domain/errors"
	"exalum/internal/domain/repository"
	"exalum/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountMetadata is the JSON payload stored alongside an account. The
// is_admin flag mirrors the creation intent; authorization reads user_roles.
type accountMetadata struct {
	IsAdmin bool `json:"is_admin"`
}

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// FindByEmail retrieves an account by its login email.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// FindByIDs retrieves the accounts for the given ids.
func (repo *accountRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Account, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var accountModels []*model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find accounts by IDs")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// Create persists a new account together with its profile row.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account, profile *entity.Profile) error {
	accountM, err := fromAccountDomain(account)
	if err != nil {
		return errors.Wrap(err, "failed to serialize account metadata")
	}

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAdminFieldsMissing
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt

	profileM := &model.ProfileModel{
		ID:       accountM.ID,
		FullName: profile.FullName,
	}
	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAdminFieldsMissing
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt

	return nil
}

// roleRepository implements the repository.RoleRepository interface.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{
		db: db,
	}
}

// HasRole reports whether the given user currently holds the role.
func (repo *roleRepository) HasRole(ctx context.Context, userID uuid.UUID, role entity.Role) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RoleModel{}).
		Where("user_id = ? AND role = ?", userID, role.String()).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check role")
	}

	return count > 0, nil
}

// ListUserIDs returns the ids of every user holding the role.
func (repo *roleRepository) ListUserIDs(ctx context.Context, role entity.Role) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.RoleModel{}).
		Where("role = ?", role.String()).
		Order("user_id ASC").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user IDs by role")
	}

	return ids, nil
}

// Grant inserts a role row for the user. Granting an already-held role is not an error.
func (repo *roleRepository) Grant(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	roleM := &model.RoleModel{
		UserID: userID,
		Role:   role.String(),
	}

	if err := repo.db.WithContext(ctx).Create(roleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to grant role")
	}

	return nil
}

// Revoke removes the role row for the user, leaving the account untouched.
func (repo *roleRepository) Revoke(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID, role.String()).
		Delete(&model.RoleModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to revoke role")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByIDs retrieves the profiles for the given ids.
func (repo *profileRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var profileModels []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by IDs")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, &entity.Profile{
			ID:        profileM.ID,
			FullName:  profileM.FullName,
			CreatedAt: profileM.CreatedAt,
		})
	}

	return profiles, nil
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	var meta accountMetadata
	if len(data.Metadata) > 0 {
		// A malformed metadata blob only loses the mirrored flag.
		_ = json.Unmarshal(data.Metadata, &meta)
	}

	return &entity.Account{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		IsAdmin:      meta.IsAdmin,
		CreatedAt:    data.CreatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel.
func fromAccountDomain(data *entity.Account) (*model.AccountModel, error) {
	if data == nil {
		return nil, nil
	}

	raw, err := json.Marshal(accountMetadata{IsAdmin: data.IsAdmin})
	if err != nil {
		return nil, err
	}

	return &model.AccountModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Metadata:     raw,
		CreatedAt:    data.CreatedAt,
	}, nil
}
