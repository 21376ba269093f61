package delivery

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"contactbook-backend/internal/contact/dto"
	"contactbook-backend/internal/contact/usecase"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact-related HTTP requests
type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactUsecase usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
	}
}

// GetContacts returns one page of the authenticated user's contacts
// GET /contacts?skip=0&limit=100
func (h *ContactHandler) GetContacts(c *gin.Context) {
	userID := c.GetString("userID")

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	contacts, total, err := h.contactUsecase.GetUserContacts(userID, limit, skip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ContactListResponse{
		Contacts: contacts,
		Total:    total,
	})
}

// CreateContact creates a new contact for the authenticated user
// POST /contacts
func (h *ContactHandler) CreateContact(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactUsecase.CreateContact(userID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// GetContactByID returns a specific contact
// GET /contacts/:id
func (h *ContactHandler) GetContactByID(c *gin.Context) {
	userID := c.GetString("userID")
	contactID := c.Param("id")

	contact, err := h.contactUsecase.GetContactByID(userID, contactID)
	if err != nil {
		if errors.Is(err, usecase.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// UpdateContact applies a partial update to a contact
// PUT /contacts/:id
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	userID := c.GetString("userID")
	contactID := c.Param("id")

	var req dto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactUsecase.UpdateContact(userID, contactID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// DeleteContact removes a contact and echoes the deleted record
// DELETE /contacts/:id
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	userID := c.GetString("userID")
	contactID := c.Param("id")

	contact, err := h.contactUsecase.DeleteContact(userID, contactID)
	if err != nil {
		if errors.Is(err, usecase.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// SearchContacts matches a substring against name, surname and email
// GET /contacts/search?query=jo
func (h *ContactHandler) SearchContacts(c *gin.Context) {
	userID := c.GetString("userID")

	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter required"})
		return
	}

	contacts, err := h.contactUsecase.SearchContacts(userID, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// BirthdayContacts lists contacts with a birthday in the next seven days
// GET /contacts/birthday
func (h *ContactHandler) BirthdayContacts(c *gin.Context) {
	userID := c.GetString("userID")

	contacts, err := h.contactUsecase.UpcomingBirthdays(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contacts)
}
