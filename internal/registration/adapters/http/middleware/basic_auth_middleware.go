package middleware

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"enroll/internal/registration/domain/entities"
	"enroll/internal/registration/ports/api"
	"enroll/pkg/logger"
)

// Ключ локального значения запроса с аутентифицированным пользователем.
const userLocalKey = "authenticated_user"

const (
	basicPrefix      = "Basic "
	wwwAuthenticate  = "WWW-Authenticate"
	basicRealm       = `Basic realm="registration"`
	msgUnauthorized  = "invalid email or password"
	msgAuthMalformed = "malformed basic auth header"
)

// NewBasicAuthMiddleware создает промежуточное ПО аутентификации по
// заголовку Authorization: Basic base64(email:password).
// Любой сбой проверки возвращает одинаковый ответ 401: причина отказа
// наружу не раскрывается.
func NewBasicAuthMiddleware(authUseCase api.AuthUseCase) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx)

		header := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, basicPrefix) {
			return unauthorized(ctx)
		}

		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, basicPrefix))
		if err != nil {
			log.Debug(requestCtx, msgAuthMalformed, zap.Error(err))
			return unauthorized(ctx)
		}

		email, password, found := strings.Cut(string(decoded), ":")
		if !found {
			log.Debug(requestCtx, msgAuthMalformed)
			return unauthorized(ctx)
		}

		user, err := authUseCase.Authenticate(requestCtx, email, password)
		if err != nil {
			return unauthorized(ctx)
		}

		ctx.Locals(userLocalKey, user)
		return ctx.Next()
	}
}

// UserFromContext извлекает аутентифицированного пользователя из запроса.
func UserFromContext(ctx fiber.Ctx) (*entities.User, bool) {
	user, ok := ctx.Locals(userLocalKey).(*entities.User)
	return user, ok
}

// Единый ответ 401 для всех путей отказа.
func unauthorized(ctx fiber.Ctx) error {
	ctx.Set(wwwAuthenticate, basicRealm)
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": msgUnauthorized,
	})
}
