package dto

import "contactbook-backend/internal/contact/domain"

// CreateContactRequest represents the request body for creating a contact.
// Birthday uses the calendar-date form "2006-01-02".
type CreateContactRequest struct {
	Name           string  `json:"name" binding:"required"`
	Surname        string  `json:"surname"`
	Email          string  `json:"email" binding:"omitempty,email"`
	Phone          string  `json:"phone"`
	Birthday       *string `json:"birthday"`
	AdditionalData string  `json:"additional_data"`
}

// UpdateContactRequest carries a partial update: only non-nil fields are
// applied, an explicit empty birthday string clears the stored date.
type UpdateContactRequest struct {
	Name           *string `json:"name"`
	Surname        *string `json:"surname"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Phone          *string `json:"phone"`
	Birthday       *string `json:"birthday"`
	AdditionalData *string `json:"additional_data"`
}

type ContactListResponse struct {
	Contacts []*domain.Contact `json:"contacts"`
	Total    int64             `json:"total"`
}
