package valueobjects

import "errors"

// ErrEmptyPasswordHash возвращается при попытке создать пустой хэш пароля.
var ErrEmptyPasswordHash = errors.New("password hash cannot be empty")

// PasswordHash представляет непрозрачный хэш пароля.
// Строковое преобразование маскирует значение, чтобы хэш не попадал
// в логи и сообщения об ошибках.
type PasswordHash struct {
	value string
}

// NewPasswordHash создает объект-значение хэша пароля.
func NewPasswordHash(value string) (PasswordHash, error) {
	if value == "" {
		return PasswordHash{}, ErrEmptyPasswordHash
	}
	return PasswordHash{value: value}, nil
}

// Value возвращает хэш для сравнения и сохранения.
func (h PasswordHash) Value() string {
	return h.value
}

// String возвращает маскированное представление.
func (h PasswordHash) String() string {
	return "PasswordHash(***)"
}
