package main

import (
	api "contactbook-backend/cmd/api"
	authdomain "contactbook-backend/internal/auth/domain"
	authRepo "contactbook-backend/internal/auth/repository"
	authUsecase "contactbook-backend/internal/auth/usecase"
	contactdomain "contactbook-backend/internal/contact/domain"
	contactRepo "contactbook-backend/internal/contact/repository"
	contactUsecase "contactbook-backend/internal/contact/usecase"
	"contactbook-backend/pkg/config"
	"contactbook-backend/pkg/database"
	"contactbook-backend/pkg/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.Init()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &contactdomain.Contact{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	contactRepository := contactRepo.NewGormContactRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)
	contactUsecaseInstance := contactUsecase.NewContactUsecase(contactRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, contactUsecaseInstance, cfg)

	// Start server
	log.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
