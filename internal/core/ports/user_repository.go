package ports

import (
	"context"

	"github.com/barcraft/backoffice/internal/core/domain"
)

// UserRepository is the narrow persistence interface for user records. It is
// the only component allowed to write them. Uniqueness of username and email
// is enforced by the storage layer; Create translates constraint violations
// into domain.ErrDuplicateUsername / domain.ErrDuplicateEmail.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateStatus(ctx context.Context, id string, isActive bool) error
	UpdateRole(ctx context.Context, id, role string) error
}
