package api

import (
	"net/http"

	"contactbook-backend/internal/auth/delivery"
	authUsecase "contactbook-backend/internal/auth/usecase"
	contactDelivery "contactbook-backend/internal/contact/delivery"
	contactUsecase "contactbook-backend/internal/contact/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, contactUc contactUsecase.ContactUsecase) {
	authHandler := delivery.NewAuthHandler(authUc)
	contactHandler := contactDelivery.NewContactHandler(contactUc)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Registration and token endpoints (no auth required)
	r.POST("/users/", authHandler.Register)
	r.POST("/token/", authHandler.Login)
	r.POST("/refresh/", authHandler.Refresh)

	// Contact routes (protected, owner-scoped)
	contacts := r.Group("/contacts")
	contacts.Use(delivery.AuthMiddleware(authUc))
	{
		contacts.GET("", contactHandler.GetContacts)
		contacts.POST("", contactHandler.CreateContact)
		contacts.GET("/search", contactHandler.SearchContacts)
		contacts.GET("/birthday", contactHandler.BirthdayContacts)
		contacts.GET("/:id", contactHandler.GetContactByID)
		contacts.PUT("/:id", contactHandler.UpdateContact)
		contacts.DELETE("/:id", contactHandler.DeleteContact)
	}
}
