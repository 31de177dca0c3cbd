package entities

import (
	"errors"
	"fmt"
)

// Определяем ошибки домена регистрации как константы.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	ErrActivationCodeNotFound = errors.New("activation code not found")

	// ErrActivationCodeInvalid - общий вид ошибки для использованного или
	// просроченного кода. Конкретная причина различима через
	// ErrActivationCodeUsed и ErrActivationCodeExpired.
	ErrActivationCodeInvalid = errors.New("activation code is invalid")
	ErrActivationCodeUsed    = fmt.Errorf("%w: activation code has already been used", ErrActivationCodeInvalid)
	ErrActivationCodeExpired = fmt.Errorf("%w: activation code has expired, request a new one", ErrActivationCodeInvalid)

	// ErrUnauthorized - единственная ошибка, видимая при любом сбое проверки
	// учетных данных. Причина сбоя наружу не раскрывается.
	ErrUnauthorized = errors.New("invalid email or password")
)
