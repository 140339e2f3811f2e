package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/barcraft/backoffice/internal/core/domain"
	"github.com/barcraft/backoffice/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if resp := bindAndValidate(c, &req); resp != nil {
		return c.JSON(http.StatusBadRequest, resp)
	}

	tokenStr, user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername),
			errors.Is(err, domain.ErrDuplicateEmail),
			errors.Is(err, domain.ErrInvalidRole),
			errors.Is(err, domain.ErrPasswordTooShort):
			return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{Token: tokenStr, User: toUserResponse(user)})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if resp := bindAndValidate(c, &req); resp != nil {
		return c.JSON(http.StatusBadRequest, resp)
	}

	tokenStr, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, errorResponse{Message: "invalid credentials"})
		case errors.Is(err, domain.ErrAccountInactive):
			return c.JSON(http.StatusUnauthorized, errorResponse{Message: "account is inactive"})
		}
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: tokenStr, User: toUserResponse(user)})
}

// Refresh exchanges a well-signed (possibly expired) token for a fresh one.
//
// @Summary      Refresh a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Token to refresh"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if resp := bindAndValidate(c, &req); resp != nil {
		return c.JSON(http.StatusBadRequest, resp)
	}

	tokenStr, err := h.authService.Refresh(c.Request().Context(), req.Token)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, errorResponse{Message: "invalid token"})
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: tokenStr})
}

// Me returns the authenticated user's fresh profile.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), id.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Message: "user not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Logout revokes the presented bearer token until its natural expiry.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204  "token revoked"
// @Failure      401  {object}  errorResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, err := currentIdentity(c); err != nil {
		return err
	}

	// The middleware already verified the header shape.
	parts := strings.SplitN(c.Request().Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}

	if err := h.authService.Logout(c.Request().Context(), parts[1]); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
