// Package token issues and verifies the stateless HS256 bearer tokens used
// for authentication. There is no server-side session: a token is valid as
// long as its signature checks out and it has not expired. Revocation before
// natural expiry is layered on top by the transport (see the Redis denylist
// consulted in the auth middleware); the tokens themselves carry a jti so a
// denylist entry can target a single credential.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/barcraft/backoffice/internal/core/domain"
)

const DefaultTTL = 7 * 24 * time.Hour

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims are the identity attributes embedded in every token. Subject holds
// the user ID and ID holds the jti.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and parses tokens with a single symmetric secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a fresh token for user, expiring after the manager's TTL.
func (m *Manager) Issue(user *domain.User) (string, *Claims, error) {
	now := time.Now().UTC()
	claims := &Claims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// Verify performs strict validation: signature and expiry must both hold.
// Protected routes always use this mode.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, m.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !tkn.Valid || !domain.ValidRole(claims.Role) {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// VerifyIgnoringExpiry validates the signature only, tolerating an expired
// token. This relaxed mode exists solely for the refresh flow; it must never
// gate a protected route.
func (m *Manager) VerifyIgnoringExpiry(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	_, err := parser.ParseWithClaims(tokenStr, claims, m.keyFunc)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	if !domain.ValidRole(claims.Role) {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func (m *Manager) keyFunc(tkn *jwt.Token) (interface{}, error) {
	if tkn.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return m.secret, nil
}
