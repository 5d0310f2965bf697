package usecase

import (
	"context"

	"exalum/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase defines the interface for administrator management. Every
// caller must already have passed the role check; these operations trust the
// requester.
type AdminUsecase interface {
	// IsAdmin reports whether the account currently holds the admin role.
	// The role table is consulted on every call, never cached.
	IsAdmin(ctx context.Context, accountID uuid.UUID) (bool, error)

	// ListAdmins returns every account holding the admin role, joined with
	// its profile and login email.
	ListAdmins(ctx context.Context) ([]*entity.AdminUser, error)

	// CreateAdmin creates an account with its profile and grants it the
	// admin role.
	CreateAdmin(ctx context.Context, input *CreateAdminInput) (*entity.AdminUser, error)

	// DeleteAdmin revokes the admin role from the account, leaving the
	// account itself intact. Removing the only remaining administrator is
	// refused.
	DeleteAdmin(ctx context.Context, accountID uuid.UUID) error
}

// --- Input DTOs ---

// CreateAdminInput defines the data required to create an administrator.
type CreateAdminInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}
