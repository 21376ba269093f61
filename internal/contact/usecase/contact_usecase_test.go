package usecase

import (
	"testing"
	"time"

	"contactbook-backend/internal/contact/domain"
	"contactbook-backend/internal/contact/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

type fakeContactRepo struct {
	contacts map[string]*domain.Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: map[string]*domain.Contact{}}
}

func (f *fakeContactRepo) Create(c *domain.Contact) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	stored := *c
	f.contacts[c.ID] = &stored
	return nil
}

func (f *fakeContactRepo) FindByID(id string) (*domain.Contact, error) {
	c, ok := f.contacts[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeContactRepo) FindByUserID(userID string, limit, offset int) ([]*domain.Contact, int64, error) {
	var owned []*domain.Contact
	for _, c := range f.contacts {
		if c.UserID == userID {
			copied := *c
			owned = append(owned, &copied)
		}
	}
	total := int64(len(owned))
	if offset > len(owned) {
		offset = len(owned)
	}
	owned = owned[offset:]
	if limit < len(owned) {
		owned = owned[:limit]
	}
	return owned, total, nil
}

func (f *fakeContactRepo) Update(c *domain.Contact) error {
	stored := *c
	f.contacts[c.ID] = &stored
	return nil
}

func (f *fakeContactRepo) Delete(id string) error {
	delete(f.contacts, id)
	return nil
}

func (f *fakeContactRepo) Search(userID, query string) ([]*domain.Contact, error) {
	return nil, nil
}

func (f *fakeContactRepo) FindWithBirthday(userID string) ([]*domain.Contact, error) {
	var out []*domain.Contact
	for _, c := range f.contacts {
		if c.UserID == userID && c.Birthday != nil {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func strPtr(s string) *string { return &s }

func mustCreate(t *testing.T, uc ContactUsecase, userID string, req *dto.CreateContactRequest) *domain.Contact {
	t.Helper()
	contact, err := uc.CreateContact(userID, req)
	require.NoError(t, err)
	return contact
}

// --- tests ---

func TestCreateContact(t *testing.T) {
	uc := NewContactUsecase(newFakeContactRepo())

	contact := mustCreate(t, uc, "u1", &dto.CreateContactRequest{
		Name:     "Jo",
		Birthday: strPtr("2000-01-01"),
	})

	assert.NotEmpty(t, contact.ID)
	assert.Equal(t, "u1", contact.UserID)
	require.NotNil(t, contact.Birthday)
	assert.Equal(t, 2000, contact.Birthday.Year())
}

func TestCreateContact_BadBirthday(t *testing.T) {
	uc := NewContactUsecase(newFakeContactRepo())

	_, err := uc.CreateContact("u1", &dto.CreateContactRequest{
		Name:     "Jo",
		Birthday: strPtr("01/01/2000"),
	})
	assert.Error(t, err)
}

func TestGetContactByID_OwnershipIsEnforced(t *testing.T) {
	uc := NewContactUsecase(newFakeContactRepo())
	contact := mustCreate(t, uc, "u1", &dto.CreateContactRequest{Name: "Jo"})

	found, err := uc.GetContactByID("u1", contact.ID)
	require.NoError(t, err)
	assert.Equal(t, contact.ID, found.ID)

	// a foreign owner sees not-found, not forbidden
	_, err = uc.GetContactByID("u2", contact.ID)
	assert.ErrorIs(t, err, ErrContactNotFound)

	_, err = uc.GetContactByID("u1", "no-such-id")
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestUpdateContact_PartialFieldsOnly(t *testing.T) {
	uc := NewContactUsecase(newFakeContactRepo())
	contact := mustCreate(t, uc, "u1", &dto.CreateContactRequest{
		Name:     "Jo",
		Surname:  "Smith",
		Email:    "jo@example.com",
		Birthday: strPtr("2000-01-01"),
	})

	updated, err := uc.UpdateContact("u1", contact.ID, &dto.UpdateContactRequest{
		Phone: strPtr("555"),
	})
	require.NoError(t, err)

	assert.Equal(t, "555", updated.Phone)
	assert.Equal(t, "Jo", updated.Name)
	assert.Equal(t, "Smith", updated.Surname)
	assert.Equal(t, "jo@example.com", updated.Email)
	require.NotNil(t, updated.Birthday)
	assert.Equal(t, 2000, updated.Birthday.Year())
}

func TestUpdateContact_ClearBirthday(t *testing.T) {
	uc := NewContactUsecase(newFakeContactRepo())
	contact := mustCreate(t, uc, "u1", &dto.CreateContactRequest{
		Name:     "Jo",
		Birthday: strPtr("2000-01-01"),
	})

	updated, err := uc.UpdateContact("u1", contact.ID, &dto.UpdateContactRequest{
		Birthday: strPtr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Birthday)
}

func TestUpdateContact_NotFound(t *testing.T) {
	uc := NewContactUsecase(newFakeContactRepo())

	_, err := uc.UpdateContact("u1", "no-such-id", &dto.UpdateContactRequest{Phone: strPtr("555")})
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestDeleteContact_ReturnsRecordThenGone(t *testing.T) {
	uc := NewContactUsecase(newFakeContactRepo())
	contact := mustCreate(t, uc, "u1", &dto.CreateContactRequest{Name: "Jo"})

	deleted, err := uc.DeleteContact("u1", contact.ID)
	require.NoError(t, err)
	assert.Equal(t, contact.ID, deleted.ID)
	assert.Equal(t, "Jo", deleted.Name)

	_, err = uc.GetContactByID("u1", contact.ID)
	assert.ErrorIs(t, err, ErrContactNotFound)

	_, err = uc.DeleteContact("u1", contact.ID)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestUpcomingBirthdays_WindowIsInclusive(t *testing.T) {
	uc := NewContactUsecase(newFakeContactRepo())
	today := time.Date(2026, time.June, 10, 12, 0, 0, 0, time.UTC)

	mustCreate(t, uc, "u1", &dto.CreateContactRequest{Name: "today", Birthday: strPtr("1990-06-10")})
	mustCreate(t, uc, "u1", &dto.CreateContactRequest{Name: "last-day", Birthday: strPtr("1985-06-17")})
	mustCreate(t, uc, "u1", &dto.CreateContactRequest{Name: "after", Birthday: strPtr("1985-06-18")})
	mustCreate(t, uc, "u1", &dto.CreateContactRequest{Name: "before", Birthday: strPtr("1985-06-09")})

	matches, err := uc.UpcomingBirthdays("u1", today)
	require.NoError(t, err)

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Name)
	}
	assert.ElementsMatch(t, []string{"today", "last-day"}, names)
}

func TestUpcomingBirthdays_YearIsIgnored(t *testing.T) {
	uc := NewContactUsecase(newFakeContactRepo())
	today := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)

	// birth years far outside the current window must still match
	mustCreate(t, uc, "u1", &dto.CreateContactRequest{Name: "old", Birthday: strPtr("1950-06-12")})

	matches, err := uc.UpcomingBirthdays("u1", today)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "old", matches[0].Name)
}

func TestUpcomingBirthdays_WrapsAcrossNewYear(t *testing.T) {
	uc := NewContactUsecase(newFakeContactRepo())
	today := time.Date(2026, time.December, 28, 0, 0, 0, 0, time.UTC)

	mustCreate(t, uc, "u1", &dto.CreateContactRequest{Name: "january", Birthday: strPtr("1990-01-02")})
	mustCreate(t, uc, "u1", &dto.CreateContactRequest{Name: "too-late", Birthday: strPtr("1990-01-05")})

	matches, err := uc.UpcomingBirthdays("u1", today)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "january", matches[0].Name)
}
