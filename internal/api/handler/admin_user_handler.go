package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barcraft/backoffice/internal/core/domain"
	"github.com/barcraft/backoffice/internal/core/ports"
)

// AdminUserHandler exposes the admin-only account mutations. Routes are
// gated by the Auth + RBAC(admin) middleware pair.
type AdminUserHandler struct {
	authService ports.AuthService
}

func NewAdminUserHandler(authService ports.AuthService) *AdminUserHandler {
	return &AdminUserHandler{authService: authService}
}

// UpdateStatus enables or soft-disables an account.
//
// @Summary      Set a user's active flag
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "User ID"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/users/{id}/status [put]
func (h *AdminUserHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if resp := bindAndValidate(c, &req); resp != nil {
		return c.JSON(http.StatusBadRequest, resp)
	}

	user, err := h.authService.SetUserActive(c.Request().Context(), c.Param("id"), *req.IsActive)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Message: "user not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateRole changes an account's role. Already issued tokens keep their old
// role claim until refreshed or expired.
//
// @Summary      Set a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/users/{id}/role [put]
func (h *AdminUserHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if resp := bindAndValidate(c, &req); resp != nil {
		return c.JSON(http.StatusBadRequest, resp)
	}

	user, err := h.authService.SetUserRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRole):
			return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid role"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Message: "user not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}
