package entities

import (
	"enroll/internal/registration/domain/valueobjects"
)

// UserStatus представляет статус учетной записи пользователя.
type UserStatus string

// Жизненный цикл учетной записи: pending -> active, без обратного перехода.
const (
	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"
)

// User представляет основную сущность домена пользователя.
// Сущность неизменяема: смена статуса порождает новый снимок,
// который возвращает хранилище.
type User struct {
	ID           int64
	PublicID     valueobjects.PublicID
	Email        string
	PasswordHash valueobjects.PasswordHash
	Status       UserStatus
}

// IsActive сообщает, активирована ли учетная запись.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// WithStatus возвращает копию пользователя с новым статусом.
func (u *User) WithStatus(status UserStatus) *User {
	copied := *u
	copied.Status = status
	return &copied
}
