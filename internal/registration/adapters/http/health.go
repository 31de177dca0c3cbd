package http

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"enroll/pkg/logger"
)

// Pinger проверяет доступность хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler отвечает на запросы проверки работоспособности сервиса.
type HealthHandler struct {
	pinger Pinger
}

// NewHealthHandler создает новый обработчик healthcheck.
func NewHealthHandler(pinger Pinger) *HealthHandler {
	return &HealthHandler{pinger: pinger}
}

// Healthcheck проверяет доступность сервиса и базы данных.
func (h *HealthHandler) Healthcheck(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()

	if err := h.pinger.Ping(requestCtx); err != nil {
		logger.Log(requestCtx).Error(requestCtx, "database ping failed", zap.Error(err))
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
	})
}
