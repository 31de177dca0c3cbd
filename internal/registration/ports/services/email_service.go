package services

import "context"

// EmailService определяет операции отправки писем пользователю.
type EmailService interface {
	SendActivationCode(ctx context.Context, email, code string) error
}
