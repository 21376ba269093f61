package repository

import "contactbook-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *domain.User) error

	// FindByEmail finds a user by exact email match, (nil, nil) when absent
	FindByEmail(email string) (*domain.User, error)

	// FindByID finds a user by its ID, (nil, nil) when absent
	FindByID(id string) (*domain.User, error)
}
