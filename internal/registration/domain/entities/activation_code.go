package entities

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// ActivationCodeStatus представляет статус кода активации.
type ActivationCodeStatus string

// Код одноразовый: из used обратно в pending перехода нет.
const (
	ActivationCodeStatusPending ActivationCodeStatus = "pending"
	ActivationCodeStatusUsed    ActivationCodeStatus = "used"
)

// Константы кода активации.
const (
	// ActivationCodeLength - длина кода активации в символах.
	ActivationCodeLength = 4

	// DefaultActivationCodeTTL - срок действия кода активации по умолчанию.
	DefaultActivationCodeTTL = time.Minute
)

// ActivationCode представляет сущность кода активации учетной записи.
type ActivationCode struct {
	UserID    int64
	Code      string
	ExpiresAt time.Time
	Status    ActivationCodeStatus
}

// GenerateCode генерирует 4-значный числовой код с ведущими нулями.
// Равномерный выбор из диапазона 0000-9999; криптографическая стойкость
// не требуется при минутном сроке действия.
func GenerateCode() string {
	return fmt.Sprintf("%04d", rand.IntN(10000))
}

// NewActivationCode создает новый код активации для пользователя
// со сгенерированным кодом, сроком действия ttl и статусом pending.
func NewActivationCode(userID int64, ttl time.Duration) *ActivationCode {
	if ttl <= 0 {
		ttl = DefaultActivationCodeTTL
	}

	return &ActivationCode{
		UserID:    userID,
		Code:      GenerateCode(),
		ExpiresAt: time.Now().UTC().Add(ttl),
		Status:    ActivationCodeStatusPending,
	}
}

// IsExpired сообщает, истек ли срок действия кода.
func (c *ActivationCode) IsExpired() bool {
	return !time.Now().UTC().Before(c.ExpiresAt)
}

// IsUsed сообщает, был ли код уже использован.
func (c *ActivationCode) IsUsed() bool {
	return c.Status == ActivationCodeStatusUsed
}

// Validate проверяет пригодность кода для активации.
// Использованность проверяется раньше истечения срока: для использованного
// кода причина "already used" информативнее для вызывающей стороны.
func (c *ActivationCode) Validate() error {
	if c.IsUsed() {
		return ErrActivationCodeUsed
	}

	if c.IsExpired() {
		return ErrActivationCodeExpired
	}

	return nil
}
