// Package services содержит адаптеры сервисов регистрации: хэширование
// паролей и доставку писем с кодом активации.
package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"enroll/internal/registration/domain/valueobjects"
	svc "enroll/internal/registration/ports/services"
)

// Ошибки, связанные с хэшированием паролей.
var (
	ErrHashingFailed = errors.New("failed to hash password")
)

const (
	errMsgFailedToGenerateHash = "failed to generate password hash"
	errMsgErrorComparingHash   = "error comparing password with hash"
)

// ServiceBcrypt реализует интерфейс PasswordService.
type ServiceBcrypt struct {
	cost int
}

// NewBcrypt создает новый экземпляр сервиса bcrypt.
func NewBcrypt(cost int) svc.PasswordService {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &ServiceBcrypt{cost: cost}
}

// Hash хэширует пароль с помощью bcrypt.
func (s *ServiceBcrypt) Hash(_ context.Context, password valueobjects.Password) (valueobjects.PasswordHash, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password.Value()), s.cost)
	if err != nil {
		return valueobjects.PasswordHash{}, fmt.Errorf("%s: %w", errMsgFailedToGenerateHash, ErrHashingFailed)
	}

	hash, err := valueobjects.NewPasswordHash(string(hashedBytes))
	if err != nil {
		return valueobjects.PasswordHash{}, fmt.Errorf("%s: %w", errMsgFailedToGenerateHash, err)
	}

	return hash, nil
}

// Verify проверяет соответствие пароля хэшу.
// Сравнение выполняется за постоянное время внутри bcrypt.
func (s *ServiceBcrypt) Verify(_ context.Context, password valueobjects.Password, hash valueobjects.PasswordHash) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash.Value()), []byte(password.Value()))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", errMsgErrorComparingHash, err)
	}

	return true, nil
}
