package token

import (
	"testing"
	"time"

	"github.com/barcraft/backoffice/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       "user_1",
		Username: "alice",
		Role:     domain.RoleClient,
		IsActive: true,
	}
}

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager("secret", time.Hour)

	signed, claims, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected non-empty token")
	}
	if claims.ID == "" {
		t.Fatalf("expected jti to be set")
	}

	parsed, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if parsed.Subject != "user_1" {
		t.Fatalf("expected subject user_1, got %s", parsed.Subject)
	}
	if parsed.Username != "alice" || parsed.Role != domain.RoleClient {
		t.Fatalf("unexpected claims: %+v", parsed)
	}
	if parsed.ID != claims.ID {
		t.Fatalf("jti mismatch: %s vs %s", parsed.ID, claims.ID)
	}
}

func TestManager_Verify_WrongSecret(t *testing.T) {
	m := NewManager("secret", time.Hour)
	signed, _, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := NewManager("different", time.Hour)
	if _, err := other.Verify(signed); err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestManager_Verify_Malformed(t *testing.T) {
	m := NewManager("secret", time.Hour)
	if _, err := m.Verify("not-a-token"); err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestManager_ExpiredToken(t *testing.T) {
	m := NewManager("secret", time.Millisecond)
	signed, _, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	// Strict mode rejects the expired token...
	if _, err := m.Verify(signed); err != ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}

	// ...but the refresh-mode verifier still accepts the signature.
	claims, err := m.VerifyIgnoringExpiry(signed)
	if err != nil {
		t.Fatalf("relaxed verify: %v", err)
	}
	if claims.Subject != "user_1" {
		t.Fatalf("expected subject user_1, got %s", claims.Subject)
	}
}

func TestManager_VerifyIgnoringExpiry_WrongSecret(t *testing.T) {
	m := NewManager("secret", time.Millisecond)
	signed, _, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := NewManager("different", time.Hour)
	if _, err := other.VerifyIgnoringExpiry(signed); err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
