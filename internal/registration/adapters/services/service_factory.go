package services

import (
	svc "enroll/internal/registration/ports/services"
)

// ServiceFactory создает все необходимые сервисы регистрации.
type ServiceFactory struct {
	passwordService svc.PasswordService
	emailService    svc.EmailService
}

// NewServiceFactory создает новую фабрику сервисов. Если хост SMTP не
// задан, письма с кодами пишутся в лог вместо отправки.
func NewServiceFactory(bcryptCost int, emailFrom, smtpHost string, smtpPort int) *ServiceFactory {
	var emailService svc.EmailService
	if smtpHost != "" {
		emailService = NewSMTPEmailService(emailFrom, smtpHost, smtpPort)
	} else {
		emailService = NewLoggerEmailService(emailFrom)
	}

	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
		emailService:    emailService,
	}
}

// PasswordService возвращает сервис для работы с паролями.
func (f *ServiceFactory) PasswordService() svc.PasswordService {
	return f.passwordService
}

// EmailService возвращает сервис отправки писем.
func (f *ServiceFactory) EmailService() svc.EmailService {
	return f.emailService
}
