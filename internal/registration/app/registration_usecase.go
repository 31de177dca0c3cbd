// Package app содержит use cases сервиса регистрации.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"enroll/internal/registration/domain/entities"
	"enroll/internal/registration/domain/valueobjects"
	"enroll/internal/registration/ports/api"
	"enroll/internal/registration/ports/repositories"
	svc "enroll/internal/registration/ports/services"
	"enroll/pkg/logger"
)

const (
	methodRegisterUser        = "RegisterUser"
	methodIssueActivationCode = "IssueActivationCode"
	methodActivateUser        = "ActivateUser"

	msgStartRegistration   = "starting user registration"
	msgInvalidPassword     = "password does not meet policy requirements"
	msgUserCreated         = "user created with pending status"
	msgUserRegistered      = "user registered successfully"
	msgIssuingCode         = "issuing activation code"
	msgCodeSaved           = "activation code persisted"
	msgCodeIssued          = "activation code issued"
	msgActivationAttempt   = "activation attempt"
	msgCodeInvalid         = "activation code rejected"
	msgUserActivated       = "user activated successfully"
	msgActivationCodeEmail = "activation code email dispatched"

	msgErrHashPassword   = "failed to hash password"
	msgErrCreateUser     = "failed to create user"
	msgErrFindingUser    = "failed to find user"
	msgErrSaveCode       = "failed to save activation code"
	msgErrFindingCode    = "failed to find activation code"
	msgErrSetStatus      = "failed to set user status"
	msgErrMarkCodeUsed   = "failed to mark activation code as used"
	msgErrSendCodeEmail  = "failed to send activation code email"
	msgPersistedNoLetter = "user and code persisted but email dispatch failed"

	errCtxValidatingPassword = "validating password"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxFindingUser        = "finding user"
	errCtxSavingCode         = "saving activation code"
	errCtxFindingCode        = "finding activation code"
	errCtxValidatingCode     = "validating activation code"
	errCtxActivatingUser     = "activating user"
	errCtxMarkingCodeUsed    = "marking activation code as used"
	errCtxSendingCodeEmail   = "sending activation code email"
)

// RegistrationUseCaseImpl реализует интерфейс api.RegistrationUseCase.
type RegistrationUseCaseImpl struct {
	userRepo    repositories.UserRepository
	codeRepo    repositories.ActivationCodeRepository
	passwordSvc svc.PasswordService
	emailSvc    svc.EmailService
	codeTTL     time.Duration
}

// NewRegistrationUseCase создает новый экземпляр сервиса регистрации.
func NewRegistrationUseCase(
	userRepo repositories.UserRepository,
	codeRepo repositories.ActivationCodeRepository,
	passwordSvc svc.PasswordService,
	emailSvc svc.EmailService,
	codeTTL time.Duration,
) api.RegistrationUseCase {
	return &RegistrationUseCaseImpl{
		userRepo:    userRepo,
		codeRepo:    codeRepo,
		passwordSvc: passwordSvc,
		emailSvc:    emailSvc,
		codeTTL:     codeTTL,
	}
}

// RegisterUser регистрирует нового пользователя: проверяет пароль,
// сохраняет учетную запись со статусом pending, выпускает код активации
// и отправляет его на email. Отправка письма выполняется после надежного
// сохранения и не откатывает пользователя или код при сбое.
func (u *RegistrationUseCaseImpl) RegisterUser(ctx context.Context, email, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegisterUser), zap.String("email", email))
	log.Debug(ctx, msgStartRegistration)

	passwordVO, err := valueobjects.NewPassword(password)
	if err != nil {
		log.Debug(ctx, msgInvalidPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, err)
	}

	passwordHash, err := u.passwordSvc.Hash(ctx, passwordVO)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	user, err := u.userRepo.Create(ctx, email, passwordHash)
	if err != nil {
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserCreated, zap.String("publicID", user.PublicID.String()))

	if err := u.issueCode(ctx, user); err != nil {
		return nil, err
	}

	log.Info(ctx, msgUserRegistered, zap.String("publicID", user.PublicID.String()))
	return user, nil
}

// IssueActivationCode выпускает новый код активации для существующего
// пользователя. Ранее выпущенные pending-коды не отзываются: они истекают
// сами в пределах собственного короткого срока действия.
func (u *RegistrationUseCaseImpl) IssueActivationCode(ctx context.Context, userID int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodIssueActivationCode), zap.Int64("userID", userID))
	log.Debug(ctx, msgIssuingCode)

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	if err := u.issueCode(ctx, user); err != nil {
		return nil, err
	}

	log.Info(ctx, msgCodeIssued, zap.String("publicID", user.PublicID.String()))
	return user, nil
}

// ActivateUser активирует учетную запись по публичному идентификатору и коду.
// Порядок шагов строгий: проверка кода, смена статуса, пометка кода
// использованным. При невалидном коде статус не меняется.
func (u *RegistrationUseCaseImpl) ActivateUser(ctx context.Context, publicID valueobjects.PublicID, code string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodActivateUser), zap.String("publicID", publicID.String()))
	log.Debug(ctx, msgActivationAttempt)

	user, err := u.userRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	activationCode, err := u.codeRepo.FindByUserIDAndCode(ctx, user.ID, code)
	if err != nil {
		log.Debug(ctx, msgErrFindingCode, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingCode, err)
	}

	if err := activationCode.Validate(); err != nil {
		log.Debug(ctx, msgCodeInvalid, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingCode, err)
	}

	activatedUser, err := u.userRepo.SetStatus(ctx, user.ID, entities.UserStatusActive)
	if err != nil {
		log.Error(ctx, msgErrSetStatus, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxActivatingUser, err)
	}

	if err := u.codeRepo.MarkAsUsed(ctx, user.ID); err != nil {
		log.Error(ctx, msgErrMarkCodeUsed, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxMarkingCodeUsed, err)
	}

	log.Info(ctx, msgUserActivated, zap.String("publicID", activatedUser.PublicID.String()))
	return activatedUser, nil
}

// Вспомогательная функция для выпуска и отправки кода активации.
func (u *RegistrationUseCaseImpl) issueCode(ctx context.Context, user *entities.User) error {
	log := logger.Log(ctx).With(zap.Int64("userID", user.ID))

	activationCode := entities.NewActivationCode(user.ID, u.codeTTL)

	if err := u.codeRepo.Save(ctx, activationCode); err != nil {
		log.Error(ctx, msgErrSaveCode, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxSavingCode, err)
	}

	log.Debug(ctx, msgCodeSaved)

	if err := u.emailSvc.SendActivationCode(ctx, user.Email, activationCode.Code); err != nil {
		log.Error(ctx, msgErrSendCodeEmail, zap.Error(err))
		log.Warn(ctx, msgPersistedNoLetter)
		return fmt.Errorf("%s: %w", errCtxSendingCodeEmail, err)
	}

	log.Debug(ctx, msgActivationCodeEmail)
	return nil
}
