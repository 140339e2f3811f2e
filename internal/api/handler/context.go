package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barcraft/backoffice/internal/api/middleware"
)

// currentIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call. Presence proves the middleware ran;
// a route wired without it is a configuration bug surfaced as 401 rather
// than a nil-deref downstream.
func currentIdentity(c echo.Context) (middleware.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return middleware.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
