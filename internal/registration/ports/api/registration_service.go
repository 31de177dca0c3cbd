package api

import (
	"context"

	"enroll/internal/registration/domain/entities"
	"enroll/internal/registration/domain/valueobjects"
)

// RegistrationUseCase определяет основной порт операций регистрации.
type RegistrationUseCase interface {
	// RegisterUser создает учетную запись со статусом pending,
	// выпускает код активации и отправляет его на email.
	RegisterUser(ctx context.Context, email, password string) (*entities.User, error)

	// IssueActivationCode выпускает новый код активации для пользователя.
	IssueActivationCode(ctx context.Context, userID int64) (*entities.User, error)

	// ActivateUser переводит учетную запись в статус active по коду активации.
	ActivateUser(ctx context.Context, publicID valueobjects.PublicID, code string) (*entities.User, error)
}
