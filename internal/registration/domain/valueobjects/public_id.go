// Package valueobjects содержит объекты-значения домена регистрации.
package valueobjects

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UserPublicIDPrefix - префикс публичного идентификатора пользователя.
const UserPublicIDPrefix = "usr"

// Ошибки публичного идентификатора.
var (
	ErrInvalidPublicID  = errors.New("invalid public identifier")
	ErrPublicIDMismatch = errors.New("public identifier prefix mismatch")
)

// PublicID представляет публичный идентификатор сущности: короткий
// буквенный префикс типа и упорядоченный по времени UUIDv7.
// Строковая форма - "prefix_uuid". Значение неизменяемо и сравнимо:
// идентификаторы разных типов сущностей не равны даже при совпадении UUID.
type PublicID struct {
	prefix string
	value  uuid.UUID
}

// NewPublicID генерирует новый публичный идентификатор с указанным префиксом.
func NewPublicID(prefix string) (PublicID, error) {
	if prefix == "" {
		return PublicID{}, fmt.Errorf("empty prefix: %w", ErrInvalidPublicID)
	}

	value, err := uuid.NewV7()
	if err != nil {
		return PublicID{}, fmt.Errorf("generating uuid: %w", err)
	}

	return PublicID{prefix: prefix, value: value}, nil
}

// ParsePublicID разбирает строку вида "prefix_uuid" и проверяет,
// что префикс совпадает с ожидаемым.
func ParsePublicID(expectedPrefix, raw string) (PublicID, error) {
	prefix, rest, found := strings.Cut(raw, "_")
	if !found || prefix == "" || rest == "" {
		return PublicID{}, fmt.Errorf("malformed value %q: %w", raw, ErrInvalidPublicID)
	}

	if prefix != expectedPrefix {
		return PublicID{}, fmt.Errorf("expected prefix %q, got %q: %w", expectedPrefix, prefix, ErrPublicIDMismatch)
	}

	value, err := uuid.Parse(rest)
	if err != nil {
		return PublicID{}, fmt.Errorf("malformed uuid in %q: %w", raw, ErrInvalidPublicID)
	}

	return PublicID{prefix: prefix, value: value}, nil
}

// PublicIDFromUUID восстанавливает публичный идентификатор из UUID,
// хранящегося в базе данных без префикса.
func PublicIDFromUUID(prefix string, value uuid.UUID) PublicID {
	return PublicID{prefix: prefix, value: value}
}

// NewUserPublicID генерирует новый публичный идентификатор пользователя.
func NewUserPublicID() (PublicID, error) {
	return NewPublicID(UserPublicIDPrefix)
}

// ParseUserPublicID разбирает публичный идентификатор пользователя из строки.
func ParseUserPublicID(raw string) (PublicID, error) {
	return ParsePublicID(UserPublicIDPrefix, raw)
}

// UserPublicIDFromUUID восстанавливает идентификатор пользователя из UUID.
func UserPublicIDFromUUID(value uuid.UUID) PublicID {
	return PublicIDFromUUID(UserPublicIDPrefix, value)
}

// Prefix возвращает префикс типа сущности.
func (p PublicID) Prefix() string {
	return p.prefix
}

// UUID возвращает UUID-часть идентификатора.
func (p PublicID) UUID() uuid.UUID {
	return p.value
}

// IsZero сообщает, является ли идентификатор нулевым значением.
func (p PublicID) IsZero() bool {
	return p.prefix == "" && p.value == uuid.Nil
}

// String возвращает строковую форму "prefix_uuid".
func (p PublicID) String() string {
	return p.prefix + "_" + p.value.String()
}
