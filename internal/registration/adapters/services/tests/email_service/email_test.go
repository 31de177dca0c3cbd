package emailservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enroll/internal/registration/adapters/services"
	"enroll/pkg/logger"
)

func TestLoggerEmailService(t *testing.T) {
	err := logger.InitGlobalLoggerWithLevel(logger.Development, "info")
	require.NoError(t, err)

	service := services.NewLoggerEmailService("noreply@enroll.local")

	// Лог-транспорт не отказывает: доставка всегда успешна.
	err = service.SendActivationCode(context.Background(), "user@example.com", "0413")
	assert.NoError(t, err)
}

func TestSMTPEmailServiceUnreachableServer(t *testing.T) {
	err := logger.InitGlobalLoggerWithLevel(logger.Development, "info")
	require.NoError(t, err)

	// Порт 1 закрыт: ошибка соединения должна дойти до вызывающего.
	service := services.NewSMTPEmailService("noreply@enroll.local", "127.0.0.1", 1)

	err = service.SendActivationCode(context.Background(), "user@example.com", "0413")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending mail via smtp")
}

func TestServiceFactory(t *testing.T) {
	t.Run("without smtp host uses logging transport", func(t *testing.T) {
		factory := services.NewServiceFactory(10, "noreply@enroll.local", "", 0)

		assert.NotNil(t, factory.PasswordService())
		assert.NotNil(t, factory.EmailService())
		assert.IsType(t, services.NewLoggerEmailService(""), factory.EmailService())
	})

	t.Run("with smtp host uses smtp transport", func(t *testing.T) {
		factory := services.NewServiceFactory(10, "noreply@enroll.local", "mail.internal", 25)

		assert.NotNil(t, factory.EmailService())
		assert.IsType(t, services.NewSMTPEmailService("", "", 0), factory.EmailService())
	})
}
