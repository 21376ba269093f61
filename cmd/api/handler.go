package api

import (
	authUsecase "contactbook-backend/internal/auth/usecase"
	contactUsecase "contactbook-backend/internal/contact/usecase"
	"contactbook-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	contactUsecase contactUsecase.ContactUsecase
	config         *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, contactUc contactUsecase.ContactUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		contactUsecase: contactUc,
		config:         cfg,
	}
}

// Engine builds the router with middleware and all routes attached.
func (h *Handler) Engine() *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.contactUsecase)

	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}
