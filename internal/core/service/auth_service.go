package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/barcraft/backoffice/internal/core/domain"
	"github.com/barcraft/backoffice/internal/core/ports"
	"github.com/barcraft/backoffice/internal/pkg/metrics"
	"github.com/barcraft/backoffice/internal/token"
)

// TokenRevoker abstracts the revocation denylist (Redis). A nil revoker
// leaves the base stateless design in place: logout becomes a client-side
// concern and tokens stay valid until natural expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

// AuthService implements registration, login, refresh, and the admin-gated
// account mutations.
type AuthService struct {
	repo    ports.UserRepository
	tokens  *token.Manager
	revoker TokenRevoker
	log     zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *token.Manager, revoker TokenRevoker, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, revoker: revoker, log: log}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if len(input.Password) < domain.MinPasswordLength {
		return "", nil, domain.ErrPasswordTooShort
	}

	role := input.Role
	if role == "" {
		role = domain.RoleClient
	}
	if !domain.ValidRole(role) {
		return "", nil, domain.ErrInvalidRole
	}

	// Fast-path duplicate checks for field-specific conflict messages. The
	// unique indexes on the collection remain the correctness guarantee;
	// a concurrent insert still surfaces as the same duplicate error.
	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return "", nil, domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return "", nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	signed, _, err := s.tokens.Issue(created)
	if err != nil {
		return "", nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(created.Role).Inc()
	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")

	return signed, created, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		// Unknown user and wrong password are indistinguishable to the
		// caller; anything else would allow username enumeration.
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrAccountInactive
	}

	signed, _, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", user.Username).Msg("user logged in")

	return signed, user, nil
}

// Refresh exchanges a well-signed token for a fresh one. Expiry is
// deliberately ignored so a lapsed session can be renewed without re-login;
// the claims are rebuilt from the current user record.
func (s *AuthService) Refresh(ctx context.Context, tokenStr string) (string, error) {
	claims, err := s.tokens.VerifyIgnoringExpiry(tokenStr)
	if err != nil {
		return "", err
	}

	user, err := s.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		return "", err
	}
	if !user.IsActive {
		return "", domain.ErrAccountInactive
	}

	signed, _, err := s.tokens.Issue(user)
	if err != nil {
		return "", err
	}

	metrics.TokenRefreshesTotal.Inc()
	return signed, nil
}

// CurrentUser reads the user record fresh from the store rather than
// trusting token claims, so status and role edits show up immediately.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// Logout denylists the presented token's jti for its remaining lifetime.
func (s *AuthService) Logout(ctx context.Context, tokenStr string) error {
	if s.revoker == nil {
		return nil
	}

	claims, err := s.tokens.Verify(tokenStr)
	if err != nil {
		// An expired or invalid token needs no revocation.
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	if err := s.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		return err
	}

	metrics.TokensRevokedTotal.Inc()
	s.log.Info().Str("username", claims.Username).Msg("token revoked")
	return nil
}

func (s *AuthService) SetUserActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	if err := s.repo.UpdateStatus(ctx, id, active); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Bool("is_active", active).Msg("user status updated")
	return user, nil
}

func (s *AuthService) SetUserRole(ctx context.Context, id, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Str("role", role).Msg("user role updated")
	return user, nil
}
