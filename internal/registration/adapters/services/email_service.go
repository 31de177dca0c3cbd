package services

import (
	"context"

	"go.uber.org/zap"

	svc "enroll/internal/registration/ports/services"
	"enroll/pkg/logger"
)

const msgSendingActivationCode = "sending activation code email"

// LoggerEmailService реализует EmailService поверх структурированного лога.
// Письмо не отправляется по SMTP: код пишется в лог, что достаточно для
// разработки и стендов без почтового транспорта.
type LoggerEmailService struct {
	from string
}

// NewLoggerEmailService создает новый экземпляр лог-сервиса почты.
func NewLoggerEmailService(from string) svc.EmailService {
	return &LoggerEmailService{from: from}
}

// SendActivationCode пишет код активации в лог вместо отправки письма.
func (s *LoggerEmailService) SendActivationCode(ctx context.Context, email, code string) error {
	logger.Log(ctx).Info(ctx, msgSendingActivationCode,
		zap.String("from", s.from),
		zap.String("to", email),
		zap.String("activation_code", code),
	)
	return nil
}
