package dto

import authdomain "taskdeck-backend/internal/auth/domain"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is a partial update; only non-nil fields are applied.
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type AuthResponse struct {
	Token string                 `json:"token"`
	User  *authdomain.PublicUser `json:"user"`
}
