package valueobjects

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Требования к паролю.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 128

	// PasswordSpecialChars - набор допустимых специальных символов.
	PasswordSpecialChars = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"
)

// ErrPasswordPolicyViolation - общий вид ошибки нарушения парольной политики.
var ErrPasswordPolicyViolation = errors.New("password does not meet policy requirements")

var (
	reUppercase = regexp.MustCompile(`[A-Z]`)
	reLowercase = regexp.MustCompile(`[a-z]`)
	reDigit     = regexp.MustCompile(`\d`)
)

// PasswordPolicyError содержит полный список нарушенных правил политики.
// Правила проверяются все сразу, чтобы пользователь увидел каждое нарушение,
// а не только первое.
type PasswordPolicyError struct {
	Violations []string
}

// Error возвращает все нарушения одним сообщением.
func (e *PasswordPolicyError) Error() string {
	return ErrPasswordPolicyViolation.Error() + ": " + strings.Join(e.Violations, "; ")
}

// Unwrap позволяет сопоставлять ошибку с ErrPasswordPolicyViolation через errors.Is.
func (e *PasswordPolicyError) Unwrap() error {
	return ErrPasswordPolicyViolation
}

// Password представляет проверенный по парольной политике открытый пароль.
// Строковое преобразование маскирует значение.
type Password struct {
	value string
}

// NewPassword проверяет пароль по всем правилам политики и возвращает
// объект-значение либо PasswordPolicyError с полным списком нарушений.
func NewPassword(value string) (Password, error) {
	var violations []string

	length := utf8.RuneCountInString(value)
	if length < MinPasswordLength {
		violations = append(violations,
			fmt.Sprintf("password must be at least %d characters long", MinPasswordLength))
	}
	if length > MaxPasswordLength {
		violations = append(violations,
			fmt.Sprintf("password must be at most %d characters long", MaxPasswordLength))
	}
	if !reUppercase.MatchString(value) {
		violations = append(violations, "password must contain at least one uppercase letter")
	}
	if !reLowercase.MatchString(value) {
		violations = append(violations, "password must contain at least one lowercase letter")
	}
	if !reDigit.MatchString(value) {
		violations = append(violations, "password must contain at least one digit")
	}
	if !strings.ContainsAny(value, PasswordSpecialChars) {
		violations = append(violations, "password must contain at least one special character")
	}

	if len(violations) > 0 {
		return Password{}, &PasswordPolicyError{Violations: violations}
	}

	return Password{value: value}, nil
}

// Value возвращает открытое значение пароля для передачи хэшеру.
func (p Password) Value() string {
	return p.value
}

// String возвращает маскированное представление.
func (p Password) String() string {
	return "***"
}
