package services

import (
	"context"

	"enroll/internal/registration/domain/valueobjects"
)

// PasswordService определяет операции хэширования и проверки пароля.
type PasswordService interface {
	Hash(ctx context.Context, password valueobjects.Password) (valueobjects.PasswordHash, error)

	// Verify сравнивает пароль с хэшем за постоянное время.
	Verify(ctx context.Context, password valueobjects.Password, hash valueobjects.PasswordHash) (bool, error)
}
