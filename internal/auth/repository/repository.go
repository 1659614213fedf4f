package repository

import authdomain "taskdeck-backend/internal/auth/domain"

// UserRepository defines the interface for credential record access.
// Lookups return (nil, nil) when no record matches.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	Update(user *authdomain.User) error
}
