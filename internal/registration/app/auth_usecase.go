package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"enroll/internal/registration/domain/entities"
	"enroll/internal/registration/domain/valueobjects"
	"enroll/internal/registration/ports/api"
	"enroll/internal/registration/ports/repositories"
	svc "enroll/internal/registration/ports/services"
	"enroll/pkg/logger"
)

const (
	methodAuthenticate = "Authenticate"

	msgAuthAttempt          = "authentication attempt"
	msgMissingCredentials   = "missing email or password"
	msgUnknownEmail         = "authentication attempt with unknown email"
	msgMalformedPassword    = "authentication password failed policy check"
	msgPasswordMismatch     = "password does not match stored hash"
	msgUserAuthenticated    = "user authenticated successfully"
	msgErrLookingUpUser     = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"

	errCtxLookingUpUser     = "looking up user"
	errCtxVerifyingPassword = "verifying password"
)

// AuthUseCaseImpl реализует интерфейс api.AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
}

// NewAuthUseCase создает новый экземпляр сервиса проверки учетных данных.
func NewAuthUseCase(userRepo repositories.UserRepository, passwordSvc svc.PasswordService) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
	}
}

// Authenticate разрешает пару email/пароль в пользователя любого статуса.
// Все четыре пути отказа (пустые поля, неизвестный email, пароль вне
// политики, несовпадение пароля) возвращают один и тот же
// entities.ErrUnauthorized, чтобы не допустить перебор учетных записей.
func (a *AuthUseCaseImpl) Authenticate(ctx context.Context, email, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate), zap.String("email", email))
	log.Debug(ctx, msgAuthAttempt)

	if email == "" || password == "" {
		log.Debug(ctx, msgMissingCredentials)
		return nil, entities.ErrUnauthorized
	}

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgUnknownEmail)
			return nil, entities.ErrUnauthorized
		}
		log.Error(ctx, msgErrLookingUpUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxLookingUpUser, err)
	}

	passwordVO, err := valueobjects.NewPassword(password)
	if err != nil {
		log.Debug(ctx, msgMalformedPassword)
		return nil, entities.ErrUnauthorized
	}

	valid, err := a.passwordSvc.Verify(ctx, passwordVO, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgPasswordMismatch, zap.Int64("userID", user.ID))
		return nil, entities.ErrUnauthorized
	}

	log.Info(ctx, msgUserAuthenticated, zap.Int64("userID", user.ID))
	return user, nil
}
