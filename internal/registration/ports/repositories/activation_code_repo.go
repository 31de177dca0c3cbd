package repositories

import (
	"context"

	"enroll/internal/registration/domain/entities"
)

// ActivationCodeRepository определяет интерфейс для операций с кодами активации.
type ActivationCodeRepository interface {
	Save(ctx context.Context, code *entities.ActivationCode) error

	// FindByUserIDAndCode ищет код по паре (пользователь, код).
	// Возвращает entities.ErrActivationCodeNotFound, если пары нет.
	FindByUserIDAndCode(ctx context.Context, userID int64, code string) (*entities.ActivationCode, error)

	// MarkAsUsed помечает использованными только pending-коды пользователя.
	MarkAsUsed(ctx context.Context, userID int64) error
}
