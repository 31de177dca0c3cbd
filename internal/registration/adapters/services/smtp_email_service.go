package services

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"

	"go.uber.org/zap"

	svc "enroll/internal/registration/ports/services"
	"enroll/pkg/logger"
)

// Константы для логирования и ошибок.
const (
	msgActivationEmailSent = "activation code email sent"
	errCtxSendMail         = "sending mail via smtp"

	emailSubject = "Your activation code"
)

// SMTPEmailService реализует EmailService поверх SMTP-сервера без
// аутентификации. Используется, когда в конфигурации задан хост SMTP.
type SMTPEmailService struct {
	from string
	addr string
}

// NewSMTPEmailService создает новый экземпляр SMTP-сервиса почты.
func NewSMTPEmailService(from, host string, port int) svc.EmailService {
	return &SMTPEmailService{
		from: from,
		addr: net.JoinHostPort(host, strconv.Itoa(port)),
	}
}

// SendActivationCode отправляет письмо с кодом активации.
func (s *SMTPEmailService) SendActivationCode(ctx context.Context, email, code string) error {
	message := []byte("From: " + s.from + "\r\n" +
		"To: " + email + "\r\n" +
		"Subject: " + emailSubject + "\r\n" +
		"\r\n" +
		"Your activation code is: " + code + "\r\n")

	if err := smtp.SendMail(s.addr, nil, s.from, []string{email}, message); err != nil {
		return fmt.Errorf("%s: %w", errCtxSendMail, err)
	}

	logger.Log(ctx).Info(ctx, msgActivationEmailSent,
		zap.String("from", s.from),
		zap.String("to", email),
	)
	return nil
}
