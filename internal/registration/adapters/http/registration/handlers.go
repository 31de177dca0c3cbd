// Package registration содержит HTTP обработчики сервиса регистрации.
package registration

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"enroll/internal/registration/adapters/http/middleware"
	"enroll/internal/registration/domain/entities"
	"enroll/internal/registration/domain/valueobjects"
	"enroll/internal/registration/ports/api"
	"enroll/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister     = "registration handler: register"
	LogHandlerIssueCode    = "registration handler: issue activation code"
	LogHandlerActivate     = "registration handler: activate"
	LogHandlerCurrentUser  = "registration handler: current user"
	ErrorInvalidRequest    = "invalid request"
	ErrorFailedToServe     = "failed to serve request"
	ErrorMissingUser       = "authenticated user missing from request context"
	errMsgInvalidEmail     = "invalid email format"
	errMsgEmailAndPassword = "email and password are required"
	errMsgCodeRequired     = "activation code is required"
	msgGenericUnauthorized = "invalid email or password"
)

// Формат email проверяется на границе, до вызова use case.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterRequest - тело запроса регистрации.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ActivateRequest - тело запроса активации.
type ActivateRequest struct {
	Code string `json:"code"`
}

// UserResponse - представление пользователя в ответах API.
type UserResponse struct {
	PublicID string `json:"public_id"`
	Email    string `json:"email"`
	Status   string `json:"status"`
}

// Handler содержит HTTP обработчики регистрации.
type Handler struct {
	registrationUseCase api.RegistrationUseCase
}

// NewHandler создает новый экземпляр обработчика регистрации.
func NewHandler(registrationUseCase api.RegistrationUseCase) *Handler {
	return &Handler{
		registrationUseCase: registrationUseCase,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Email == "" || req.Password == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, errMsgEmailAndPassword)
	}

	if !emailRegex.MatchString(req.Email) {
		return sendErrorResponse(ctx, http.StatusBadRequest, errMsgInvalidEmail)
	}

	user, err := h.registrationUseCase.RegisterUser(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServe, zap.Error(err))
		return sendDomainError(ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(toUserResponse(user)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// IssueActivationCode выпускает новый код активации для
// аутентифицированного пользователя.
func (h *Handler) IssueActivationCode(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerIssueCode)

	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		log.Error(requestCtx, ErrorMissingUser)
		return sendErrorResponse(ctx, http.StatusUnauthorized, msgGenericUnauthorized)
	}

	issued, err := h.registrationUseCase.IssueActivationCode(requestCtx, user.ID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServe, zap.Error(err))
		return sendDomainError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(toUserResponse(issued)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Activate активирует учетную запись аутентифицированного пользователя
// по коду активации.
func (h *Handler) Activate(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerActivate)

	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		log.Error(requestCtx, ErrorMissingUser)
		return sendErrorResponse(ctx, http.StatusUnauthorized, msgGenericUnauthorized)
	}

	var req ActivateRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Code == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, errMsgCodeRequired)
	}

	activated, err := h.registrationUseCase.ActivateUser(requestCtx, user.PublicID, req.Code)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServe, zap.Error(err))
		return sendDomainError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(toUserResponse(activated)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// CurrentUser возвращает аутентифицированного пользователя.
func (h *Handler) CurrentUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCurrentUser)

	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		log.Error(requestCtx, ErrorMissingUser)
		return sendErrorResponse(ctx, http.StatusUnauthorized, msgGenericUnauthorized)
	}

	if err := ctx.Status(http.StatusOK).JSON(toUserResponse(user)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

func toUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		PublicID: user.PublicID.String(),
		Email:    user.Email,
		Status:   string(user.Status),
	}
}

// sendDomainError переводит доменную ошибку в HTTP статус по таксономии:
// not found - 404, конфликт уникальности - 409, невалидный код - 400,
// нарушение парольной политики - 422, отказ аутентификации - 401.
func sendDomainError(ctx fiber.Ctx, err error) error {
	var policyErr *valueobjects.PasswordPolicyError
	if errors.As(err, &policyErr) {
		if jsonErr := ctx.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":      valueobjects.ErrPasswordPolicyViolation.Error(),
			"violations": policyErr.Violations,
		}); jsonErr != nil {
			return fmt.Errorf("error sending response: %w", jsonErr)
		}
		return nil
	}

	switch {
	case errors.Is(err, entities.ErrUserAlreadyExists):
		return sendErrorResponse(ctx, http.StatusConflict, entities.ErrUserAlreadyExists.Error())
	case errors.Is(err, entities.ErrUserNotFound):
		return sendErrorResponse(ctx, http.StatusNotFound, entities.ErrUserNotFound.Error())
	case errors.Is(err, entities.ErrActivationCodeNotFound):
		return sendErrorResponse(ctx, http.StatusNotFound, entities.ErrActivationCodeNotFound.Error())
	case errors.Is(err, entities.ErrActivationCodeUsed):
		return sendErrorResponse(ctx, http.StatusBadRequest, entities.ErrActivationCodeUsed.Error())
	case errors.Is(err, entities.ErrActivationCodeExpired):
		return sendErrorResponse(ctx, http.StatusBadRequest, entities.ErrActivationCodeExpired.Error())
	case errors.Is(err, entities.ErrActivationCodeInvalid):
		return sendErrorResponse(ctx, http.StatusBadRequest, entities.ErrActivationCodeInvalid.Error())
	case errors.Is(err, entities.ErrUnauthorized):
		return sendErrorResponse(ctx, http.StatusUnauthorized, msgGenericUnauthorized)
	default:
		return sendErrorResponse(ctx, http.StatusInternalServerError, "internal server error")
	}
}

// Вспомогательная функция для отправки ошибок HTTP.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
