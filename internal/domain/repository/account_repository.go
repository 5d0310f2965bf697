package repository

import (
	"context"
	"errors"

	"exalum/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches the lookup key.
var ErrAccountNotFound = errors.New("account not found")

// ErrProfileNotFound is returned when an account has no profile row.
var ErrProfileNotFound = errors.New("profile not found")

// AccountRepository defines the operations over authentication accounts and
// their profiles. It is the privileged surface used by login and by the
// administrator-management endpoints.
type AccountRepository interface {
	// FindByEmail retrieves an account by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByIDs retrieves the accounts for the given ids. Missing ids are
	// simply absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Account, error)

	// Create persists a new account together with its profile row and fills
	// in the generated id.
	Create(ctx context.Context, account *entity.Account, profile *entity.Profile) error
}

// RoleRepository defines the operations over the user_roles table, the
// authority consulted by every authorization check.
type RoleRepository interface {
	// HasRole reports whether the given user currently holds the role.
	HasRole(ctx context.Context, userID uuid.UUID, role entity.Role) (bool, error)

	// ListUserIDs returns the ids of every user holding the role.
	ListUserIDs(ctx context.Context, role entity.Role) ([]uuid.UUID, error)

	// Grant inserts a role row for the user. Granting an already-held role
	// is not an error.
	Grant(ctx context.Context, userID uuid.UUID, role entity.Role) error

	// Revoke removes the role row for the user, leaving the account itself
	// untouched.
	Revoke(ctx context.Context, userID uuid.UUID, role entity.Role) error
}

// ProfileRepository defines read access to profile rows.
type ProfileRepository interface {
	// FindByIDs retrieves the profiles for the given ids. Missing ids are
	// simply absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Profile, error)
}
