package domain

import "time"

// Contact represents a single address-book entry owned by one user.
// Everything except the name is optional.
type Contact struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	UserID         string     `json:"user_id" gorm:"index;not null"`
	Name           string     `json:"name" gorm:"not null"`
	Surname        string     `json:"surname,omitempty"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Birthday       *time.Time `json:"birthday,omitempty"`
	AdditionalData string     `json:"additional_data,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
