package config

import "time"

// ActivationConfig содержит настройки выпуска и доставки кодов активации.
type ActivationConfig struct {
	CodeTTL    string `yaml:"code_ttl" env:"REG_ACTIVATION_CODE_TTL" env-default:"1m"`
	BCryptCost int    `yaml:"bcrypt_cost" env:"REG_BCRYPT_COST" env-default:"10"`
	EmailFrom  string `yaml:"email_from" env:"REG_EMAIL_FROM" env-default:"noreply@enroll.local"`
	SMTPHost   string `yaml:"smtp_host" env:"REG_SMTP_HOST" env-default:""`
	SMTPPort   int    `yaml:"smtp_port" env:"REG_SMTP_PORT" env-default:"25"`
}

// GetCodeTTL возвращает время жизни кода активации.
func (c *ActivationConfig) GetCodeTTL() time.Duration {
	duration, err := time.ParseDuration(c.CodeTTL)
	if err != nil {
		return time.Minute
	}
	return duration
}
