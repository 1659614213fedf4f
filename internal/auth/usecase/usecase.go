package usecase

import (
	authdomain "taskdeck-backend/internal/auth/domain"
	authdto "taskdeck-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for identity business logic
type AuthUsecase interface {
	// Register creates a credential record and issues a token for it
	Register(req *authdto.RegisterRequest) (*authdto.AuthResponse, error)

	// Login verifies credentials and issues a token
	Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error)

	// Authenticate resolves a bearer token to a live principal
	Authenticate(tokenString string) (*authdomain.PublicUser, error)

	// Profile returns the principal's own record
	Profile(userID string) (*authdomain.PublicUser, error)

	// UpdateProfile applies a partial name/email update
	UpdateProfile(userID string, req *authdto.UpdateProfileRequest) (*authdomain.PublicUser, error)
}
