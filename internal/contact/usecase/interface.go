package usecase

import (
	"errors"
	"time"

	"contactbook-backend/internal/contact/domain"
	"contactbook-backend/internal/contact/dto"
)

// ErrContactNotFound is returned for unknown ids and, deliberately, for
// contacts owned by another user so that foreign ids do not leak.
var ErrContactNotFound = errors.New("contact not found")

// ContactUsecase defines the contact business logic, always owner-scoped
type ContactUsecase interface {
	// CreateContact inserts a new contact owned by the given user
	CreateContact(userID string, req *dto.CreateContactRequest) (*domain.Contact, error)

	// GetContactByID returns one of the user's contacts
	GetContactByID(userID, contactID string) (*domain.Contact, error)

	// GetUserContacts returns one page of the user's contacts plus the total
	GetUserContacts(userID string, limit, offset int) ([]*domain.Contact, int64, error)

	// UpdateContact applies a partial update to one of the user's contacts
	UpdateContact(userID, contactID string, req *dto.UpdateContactRequest) (*domain.Contact, error)

	// DeleteContact removes one of the user's contacts and returns it
	DeleteContact(userID, contactID string) (*domain.Contact, error)

	// SearchContacts matches the query against name, surname and email
	SearchContacts(userID, query string) ([]*domain.Contact, error)

	// UpcomingBirthdays returns contacts whose birthday month/day falls in
	// the inclusive window [today, today+7]
	UpcomingBirthdays(userID string, today time.Time) ([]*domain.Contact, error)
}
