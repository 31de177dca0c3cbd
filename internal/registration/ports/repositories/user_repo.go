package repositories

import (
	"context"

	"enroll/internal/registration/domain/entities"
	"enroll/internal/registration/domain/valueobjects"
)

// UserRepository определяет интерфейс для операций сохранения данных пользователя.
// Уникальность email и генерацию публичного идентификатора обеспечивает хранилище.
type UserRepository interface {
	// Create создает пользователя со статусом pending.
	// Возвращает entities.ErrUserAlreadyExists при конфликте email.
	Create(ctx context.Context, email string, passwordHash valueobjects.PasswordHash) (*entities.User, error)

	FindByID(ctx context.Context, id int64) (*entities.User, error)

	FindByPublicID(ctx context.Context, publicID valueobjects.PublicID) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// SetStatus идемпотентно устанавливает статус и возвращает свежий снимок.
	SetStatus(ctx context.Context, id int64, status entities.UserStatus) (*entities.User, error)
}
