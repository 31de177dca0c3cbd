// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"enroll/internal/registration/adapters/http/middleware"
	"enroll/internal/registration/adapters/http/registration"
	"enroll/internal/registration/ports/api"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, registrationUseCase api.RegistrationUseCase, authUseCase api.AuthUseCase, pinger Pinger) {
	registrationHandler := registration.NewHandler(registrationUseCase)
	healthHandler := NewHealthHandler(pinger)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	apiV1.Get("/healthcheck", healthHandler.Healthcheck)

	// Регистрация (публичный маршрут).
	registrationRoutes := apiV1.Group("/registration")
	registrationRoutes.Post("/", registrationHandler.Register)

	// Защищенные маршруты: требуют Basic аутентификации.
	protected := registrationRoutes.Group("")
	protected.Use(middleware.NewBasicAuthMiddleware(authUseCase))
	protected.Post("/activation-code", registrationHandler.IssueActivationCode)
	protected.Post("/activate", registrationHandler.Activate)
	protected.Get("/me", registrationHandler.CurrentUser)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
