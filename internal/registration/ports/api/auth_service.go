package api

import (
	"context"

	"enroll/internal/registration/domain/entities"
)

// AuthUseCase определяет порт проверки учетных данных.
type AuthUseCase interface {
	// Authenticate разрешает пару email/пароль в пользователя.
	// Любой сбой проверки возвращает entities.ErrUnauthorized.
	Authenticate(ctx context.Context, email, password string) (*entities.User, error)
}
