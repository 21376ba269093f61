package repository

import "contactbook-backend/internal/contact/domain"

// ContactRepository defines the interface for contact data access
type ContactRepository interface {
	// Create creates a new contact
	Create(contact *domain.Contact) error

	// FindByID finds a contact by its ID, (nil, nil) when absent
	FindByID(id string) (*domain.Contact, error)

	// FindByUserID returns one page of a user's contacts plus the total count
	FindByUserID(userID string, limit, offset int) ([]*domain.Contact, int64, error)

	// Update updates an existing contact
	Update(contact *domain.Contact) error

	// Delete deletes a contact by ID
	Delete(id string) error

	// Search returns a user's contacts whose name, surname or email contains
	// the query, case-insensitively
	Search(userID, query string) ([]*domain.Contact, error)

	// FindWithBirthday returns a user's contacts that have a birthday set
	FindWithBirthday(userID string) ([]*domain.Contact, error)
}
