package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/barcraft/backoffice/internal/core/domain"
	"github.com/barcraft/backoffice/internal/core/ports"
	"github.com/barcraft/backoffice/internal/token"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by ID
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrDuplicateUsername
		}
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = strconv.Itoa(r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateStatus(_ context.Context, id string, isActive bool) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsActive = isActive
	return nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id, role string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

type stubRevoker struct {
	revoked map[string]time.Duration
}

func (s *stubRevoker) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if s.revoked == nil {
		s.revoked = make(map[string]time.Duration)
	}
	s.revoked[jti] = ttl
	return nil
}

func newTestAuthService(repo ports.UserRepository, revoker TokenRevoker) (*AuthService, *token.Manager) {
	tokens := token.NewManager("secret", time.Hour)
	return NewAuthService(repo, tokens, revoker, zerolog.Nop()), tokens
}

func registerInput(username, email string) ports.RegisterInput {
	return ports.RegisterInput{
		Username: username,
		Email:    email,
		Password: "s3cret1",
		FullName: "Test User",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, tokens := newTestAuthService(newStubUserRepo(), nil)

	signed, user, err := svc.Register(context.Background(), registerInput("alice", "alice@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != domain.RoleClient {
		t.Fatalf("expected default role client, got %s", user.Role)
	}
	if !user.IsActive {
		t.Fatalf("expected new user to be active")
	}
	if user.PasswordHash == "s3cret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	claims, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.Subject != user.ID || claims.Role != domain.RoleClient {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	svc, _ := newTestAuthService(newStubUserRepo(), nil)

	input := registerInput("alice", "alice@example.com")
	input.Password = "abc"
	if _, _, err := svc.Register(context.Background(), input); err != domain.ErrPasswordTooShort {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc, _ := newTestAuthService(newStubUserRepo(), nil)

	input := registerInput("alice", "alice@example.com")
	input.Role = "superuser"
	if _, _, err := svc.Register(context.Background(), input); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc, _ := newTestAuthService(newStubUserRepo(), nil)

	if _, _, err := svc.Register(context.Background(), registerInput("bob", "bob@example.com")); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), registerInput("bob", "other@example.com")); err != domain.ErrDuplicateUsername {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(newStubUserRepo(), nil)

	if _, _, err := svc.Register(context.Background(), registerInput("bob", "bob@example.com")); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), registerInput("robert", "bob@example.com")); err != domain.ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, tokens := newTestAuthService(newStubUserRepo(), nil)

	if _, _, err := svc.Register(context.Background(), registerInput("carol", "carol@example.com")); err != nil {
		t.Fatalf("register: %v", err)
	}

	signed, user, err := svc.Login(context.Background(), "carol", "s3cret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if _, err := tokens.Verify(signed); err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(newStubUserRepo(), nil)

	_, _, _ = svc.Register(context.Background(), registerInput("dave", "dave@example.com"))
	if _, _, err := svc.Login(context.Background(), "dave", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _ := newTestAuthService(newStubUserRepo(), nil)

	// Same error as a wrong password: no username enumeration.
	if _, _, err := svc.Login(context.Background(), "ghost", "whatever"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo, nil)

	_, user, err := svc.Register(context.Background(), registerInput("erin", "erin@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := repo.UpdateStatus(context.Background(), user.ID, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "erin", "s3cret1"); err != domain.ErrAccountInactive {
		t.Fatalf("expected ErrAccountInactive, got %v", err)
	}
}

func TestAuthService_Refresh_PicksUpRoleChange(t *testing.T) {
	repo := newStubUserRepo()
	svc, tokens := newTestAuthService(repo, nil)

	signed, user, err := svc.Register(context.Background(), registerInput("frank", "frank@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := repo.UpdateRole(context.Background(), user.ID, domain.RoleAdmin); err != nil {
		t.Fatalf("update role: %v", err)
	}

	refreshed, err := svc.Refresh(context.Background(), signed)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	claims, err := tokens.Verify(refreshed)
	if err != nil {
		t.Fatalf("refreshed token invalid: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected refreshed role admin, got %s", claims.Role)
	}
}

func TestAuthService_Refresh_AcceptsExpiredToken(t *testing.T) {
	repo := newStubUserRepo()
	shortTokens := token.NewManager("secret", time.Millisecond)
	svc := NewAuthService(repo, shortTokens, nil, zerolog.Nop())

	signed, _, err := svc.Register(context.Background(), registerInput("gina", "gina@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := shortTokens.Verify(signed); err != token.ErrTokenExpired {
		t.Fatalf("precondition: token should be expired, got %v", err)
	}

	if _, err := svc.Refresh(context.Background(), signed); err != nil {
		t.Fatalf("refresh of expired token: %v", err)
	}
}

func TestAuthService_Refresh_BadSignature(t *testing.T) {
	svc, _ := newTestAuthService(newStubUserRepo(), nil)

	other := token.NewManager("different", time.Hour)
	signed, _, err := other.Issue(&domain.User{ID: "1", Username: "mallory", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), signed); err != token.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthService_CurrentUser_ReflectsStoreState(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo, nil)

	_, user, err := svc.Register(context.Background(), registerInput("hank", "hank@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := repo.UpdateRole(context.Background(), user.ID, domain.RoleStaff); err != nil {
		t.Fatalf("update role: %v", err)
	}

	fresh, err := svc.CurrentUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if fresh.Role != domain.RoleStaff {
		t.Fatalf("expected fresh role staff, got %s", fresh.Role)
	}
}

func TestAuthService_CurrentUser_Disabled(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo, nil)

	_, user, _ := svc.Register(context.Background(), registerInput("iris", "iris@example.com"))
	_ = repo.UpdateStatus(context.Background(), user.ID, false)

	if _, err := svc.CurrentUser(context.Background(), user.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound for disabled user, got %v", err)
	}
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	revoker := &stubRevoker{}
	svc, _ := newTestAuthService(newStubUserRepo(), revoker)

	signed, _, err := svc.Register(context.Background(), registerInput("judy", "judy@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.Logout(context.Background(), signed); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(revoker.revoked) != 1 {
		t.Fatalf("expected one revoked jti, got %d", len(revoker.revoked))
	}
	for _, ttl := range revoker.revoked {
		if ttl <= 0 || ttl > time.Hour {
			t.Fatalf("unexpected revocation ttl: %v", ttl)
		}
	}
}

func TestAuthService_SetUserRole_Invalid(t *testing.T) {
	svc, _ := newTestAuthService(newStubUserRepo(), nil)

	if _, err := svc.SetUserRole(context.Background(), "1", "owner"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_SetUserActive_NotFound(t *testing.T) {
	svc, _ := newTestAuthService(newStubUserRepo(), nil)

	if _, err := svc.SetUserActive(context.Background(), "missing", false); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
