package handler

import (
	"time"

	"github.com/barcraft/backoffice/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Details carries per-field validation messages when present.
type errorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// --- Request types ---

type registerRequest struct {
	Username string `json:"username"  validate:"required,min=3"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=client staff admin"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	Token string `json:"token" validate:"required"`
}

type updateStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=client staff admin"`
}

// --- Response types ---

// userResponse is the public user view. It never carries the password hash.
type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type authResponse struct {
	Token string        `json:"token,omitempty"`
	User  *userResponse `json:"user,omitempty"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
