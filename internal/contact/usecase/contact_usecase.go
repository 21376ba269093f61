package usecase

import (
	"fmt"
	"time"

	"contactbook-backend/internal/contact/domain"
	"contactbook-backend/internal/contact/dto"
	"contactbook-backend/internal/contact/repository"
)

const birthdayLayout = "2006-01-02"

// contactUsecase implements ContactUsecase interface
type contactUsecase struct {
	contactRepo repository.ContactRepository
}

// NewContactUsecase creates a new instance of contactUsecase
func NewContactUsecase(contactRepo repository.ContactRepository) ContactUsecase {
	return &contactUsecase{
		contactRepo: contactRepo,
	}
}

func (u *contactUsecase) CreateContact(userID string, req *dto.CreateContactRequest) (*domain.Contact, error) {
	contact := &domain.Contact{
		UserID:         userID,
		Name:           req.Name,
		Surname:        req.Surname,
		Email:          req.Email,
		Phone:          req.Phone,
		AdditionalData: req.AdditionalData,
	}

	if req.Birthday != nil && *req.Birthday != "" {
		t, err := time.Parse(birthdayLayout, *req.Birthday)
		if err != nil {
			return nil, fmt.Errorf("invalid birthday %q: expected YYYY-MM-DD", *req.Birthday)
		}
		contact.Birthday = &t
	}

	if err := u.contactRepo.Create(contact); err != nil {
		return nil, err
	}

	return contact, nil
}

func (u *contactUsecase) GetContactByID(userID, contactID string) (*domain.Contact, error) {
	contact, err := u.contactRepo.FindByID(contactID)
	if err != nil {
		return nil, err
	}
	if contact == nil || contact.UserID != userID {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

func (u *contactUsecase) GetUserContacts(userID string, limit, offset int) ([]*domain.Contact, int64, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return u.contactRepo.FindByUserID(userID, limit, offset)
}

func (u *contactUsecase) UpdateContact(userID, contactID string, req *dto.UpdateContactRequest) (*domain.Contact, error) {
	contact, err := u.GetContactByID(userID, contactID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		contact.Name = *req.Name
	}
	if req.Surname != nil {
		contact.Surname = *req.Surname
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.AdditionalData != nil {
		contact.AdditionalData = *req.AdditionalData
	}
	if req.Birthday != nil {
		if *req.Birthday == "" {
			contact.Birthday = nil
		} else {
			t, err := time.Parse(birthdayLayout, *req.Birthday)
			if err != nil {
				return nil, fmt.Errorf("invalid birthday %q: expected YYYY-MM-DD", *req.Birthday)
			}
			contact.Birthday = &t
		}
	}

	if err := u.contactRepo.Update(contact); err != nil {
		return nil, err
	}

	return contact, nil
}

func (u *contactUsecase) DeleteContact(userID, contactID string) (*domain.Contact, error) {
	contact, err := u.GetContactByID(userID, contactID)
	if err != nil {
		return nil, err
	}
	if err := u.contactRepo.Delete(contact.ID); err != nil {
		return nil, err
	}
	return contact, nil
}

func (u *contactUsecase) SearchContacts(userID, query string) ([]*domain.Contact, error) {
	return u.contactRepo.Search(userID, query)
}

// UpcomingBirthdays compares month and day only, so the stored birth year is
// irrelevant and the window wraps across New Year. The filter runs in Go to
// stay portable across database drivers.
func (u *contactUsecase) UpcomingBirthdays(userID string, today time.Time) ([]*domain.Contact, error) {
	candidates, err := u.contactRepo.FindWithBirthday(userID)
	if err != nil {
		return nil, err
	}

	window := make(map[[2]int]bool, 8)
	for i := 0; i <= 7; i++ {
		d := today.AddDate(0, 0, i)
		window[[2]int{int(d.Month()), d.Day()}] = true
	}

	matches := []*domain.Contact{}
	for _, c := range candidates {
		if c.Birthday == nil {
			continue
		}
		if window[[2]int{int(c.Birthday.Month()), c.Birthday.Day()}] {
			matches = append(matches, c)
		}
	}
	return matches, nil
}
