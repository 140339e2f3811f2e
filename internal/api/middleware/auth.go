package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/barcraft/backoffice/internal/token"
)

const identityKey = "auth.identity"

// Identity is the resolved caller attached to the request context by Auth.
// Downstream handlers read it through IdentityFrom; the middleware never
// mutates persisted state.
type Identity struct {
	UserID    string
	Username  string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

// RevocationChecker abstracts the token denylist lookup. A nil checker
// disables revocation entirely (pure stateless bearer tokens).
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Auth strict-verifies the bearer token and injects the caller identity into
// the request context. Verification failures are always 401; authorization
// is a separate stage (see RBAC).
func Auth(tokens *token.Manager, revoked RevocationChecker, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if revoked != nil {
				isRevoked, err := revoked.IsRevoked(c.Request().Context(), claims.ID)
				if err != nil {
					// Fail closed: an unreachable denylist must not let a
					// possibly revoked token through.
					log.Error().Err(err).Msg("revocation check failed")
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				if isRevoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
			}

			c.Set(identityKey, Identity{
				UserID:    claims.Subject,
				Username:  claims.Username,
				Role:      claims.Role,
				TokenID:   claims.ID,
				ExpiresAt: claims.ExpiresAt.Time,
			})

			return next(c)
		}
	}
}

// IdentityFrom extracts the identity injected by Auth. The second return is
// false when the middleware did not run on this route.
func IdentityFrom(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}

// SetIdentity places an identity into the context directly. Test helper.
func SetIdentity(c echo.Context, id Identity) {
	c.Set(identityKey, id)
}
