// Package routes defines the API routing configuration.
// It wires repositories, the onboarding service and handlers, and
// registers all HTTP routes.
package routes

import (
	"log"

	"onboard/internal/config"
	"onboard/internal/handlers"
	"onboard/internal/repositories"
	"onboard/internal/services/onboarding"
	"onboard/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App) {
	userRepo := repositories.NewUserRepository(repositories.DB, repositories.CacheService)

	blobs, err := storage.NewLocalStorage(config.GetEnv("UPLOAD_DIR", "./uploads"))
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	jwtSecret := config.GetEnv("JWT_SECRET", "onboard")
	onboardingService := onboarding.NewService(userRepo, blobs, jwtSecret)
	userHandler := handlers.NewUserHandler(onboardingService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Onboard API",
			"version": "1.0.0",
			"docs":    "/api/v1",
		})
	})
	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api/v1")
	users := api.Group("/users")

	// Stage order: admin-create, verify, profile image, KYC details,
	// identity documents, admin approve.
	users.Post("/admin", userHandler.AdminCreate)
	users.Post("/", userHandler.Verify)
	users.Post("/profile/:user_id", userHandler.UploadProfile)
	users.Post("/details/:user_id", userHandler.SubmitDetails)
	users.Post("/upload-docs/:user_id", userHandler.UploadDocs)
	users.Post("/admin/approve/:user_id", userHandler.Approve)

	users.Get("/", userHandler.List)
	users.Get("/:user_id", userHandler.Get)
}
