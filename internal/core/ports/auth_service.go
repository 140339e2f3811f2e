package ports

import (
	"context"

	"github.com/barcraft/backoffice/internal/core/domain"
)

// RegisterInput carries a self-registration request. Role is optional and
// defaults to client.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     string
}

// AuthService orchestrates the account lifecycle: registration, login,
// token refresh, and the admin-gated status/role mutations.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Refresh re-issues a token from a well-signed but possibly expired one.
	// Claims are recomputed from the current user record, never copied, so a
	// role change since issuance is picked up.
	Refresh(ctx context.Context, tokenStr string) (string, error)
	// CurrentUser returns the fresh user record for an authenticated subject.
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
	// Logout revokes the presented token until its natural expiry.
	Logout(ctx context.Context, tokenStr string) error
	SetUserActive(ctx context.Context, id string, active bool) (*domain.User, error)
	SetUserRole(ctx context.Context, id, role string) (*domain.User, error)
}
