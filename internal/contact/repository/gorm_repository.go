package repository

import (
	"errors"
	"strings"
	"time"

	"contactbook-backend/internal/contact/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormContactRepository implements ContactRepository using GORM
type gormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GORM-based ContactRepository
func NewGormContactRepository(db *gorm.DB) ContactRepository {
	return &gormContactRepository{db: db}
}

func (r *gormContactRepository) Create(contact *domain.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = time.Now()
	return r.db.Create(contact).Error
}

func (r *gormContactRepository) FindByID(id string) (*domain.Contact, error) {
	var contact domain.Contact
	err := r.db.Where("id = ?", id).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (r *gormContactRepository) FindByUserID(userID string, limit, offset int) ([]*domain.Contact, int64, error) {
	var contacts []*domain.Contact
	var total int64

	query := r.db.Model(&domain.Contact{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at ASC").Limit(limit).Offset(offset).Find(&contacts).Error

	return contacts, total, err
}

func (r *gormContactRepository) Update(contact *domain.Contact) error {
	contact.UpdatedAt = time.Now()
	return r.db.Save(contact).Error
}

func (r *gormContactRepository) Delete(id string) error {
	return r.db.Delete(&domain.Contact{}, "id = ?", id).Error
}

func (r *gormContactRepository) Search(userID, query string) ([]*domain.Contact, error) {
	var contacts []*domain.Contact
	// LOWER + LIKE keeps the match case-insensitive on both postgres and sqlite
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.Where("user_id = ?", userID).
		Where("LOWER(name) LIKE ? OR LOWER(surname) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern).
		Find(&contacts).Error
	return contacts, err
}

func (r *gormContactRepository) FindWithBirthday(userID string) ([]*domain.Contact, error) {
	var contacts []*domain.Contact
	err := r.db.Where("user_id = ? AND birthday IS NOT NULL", userID).Find(&contacts).Error
	return contacts, err
}
