package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"enroll/internal/registration/domain/entities"
	"enroll/internal/registration/ports/repositories"
	"enroll/pkg/logger"
)

// ActivationCodeRepository реализует интерфейс repositories.ActivationCodeRepository
// для работы с Postgres.
type ActivationCodeRepository struct {
	pool PgxPoolInterface
}

// NewActivationCodeRepository создает новый экземпляр репозитория кодов активации.
func NewActivationCodeRepository(pool PgxPoolInterface) repositories.ActivationCodeRepository {
	return &ActivationCodeRepository{pool: pool}
}

// Save сохраняет код активации. Повторная вставка той же пары
// (пользователь, код) обновляет срок действия и статус.
func (r *ActivationCodeRepository) Save(ctx context.Context, code *entities.ActivationCode) error {
	log := logger.Log(ctx).With(zap.String("repository", "activation_code"), zap.String("method", "Save"))

	query := `
        INSERT INTO activation_codes (user_id, code, expires_at, status)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id, code) DO UPDATE
        SET expires_at = EXCLUDED.expires_at,
            status = EXCLUDED.status,
            updated_at = (NOW() AT TIME ZONE 'UTC')
    `

	_, err := r.pool.Exec(ctx, query,
		code.UserID,
		code.Code,
		code.ExpiresAt,
		string(code.Status),
	)
	if err != nil {
		log.Error(ctx, "error saving activation code", zap.Error(err))
		return fmt.Errorf("error saving activation code: %w", err)
	}

	return nil
}

// FindByUserIDAndCode ищет код активации по паре (пользователь, код).
func (r *ActivationCodeRepository) FindByUserIDAndCode(ctx context.Context, userID int64, code string) (*entities.ActivationCode, error) {
	log := logger.Log(ctx).With(zap.String("repository", "activation_code"), zap.String("method", "FindByUserIDAndCode"))

	query := `
        SELECT user_id, code, expires_at, status
        FROM activation_codes
        WHERE user_id = $1 AND code = $2
    `

	var (
		foundUserID int64
		foundCode   string
		expiresAt   time.Time
		status      string
	)

	err := r.pool.QueryRow(ctx, query, userID, code).Scan(&foundUserID, &foundCode, &expiresAt, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "activation code not found", zap.Int64("userID", userID))
			return nil, fmt.Errorf("activation code for user %d: %w", userID, entities.ErrActivationCodeNotFound)
		}
		log.Error(ctx, "error finding activation code", zap.Error(err))
		return nil, fmt.Errorf("error querying activation code: %w", err)
	}

	return &entities.ActivationCode{
		UserID:    foundUserID,
		Code:      foundCode,
		ExpiresAt: expiresAt.UTC(),
		Status:    entities.ActivationCodeStatus(status),
	}, nil
}

// MarkAsUsed помечает использованными все pending-коды пользователя.
// Использованные и просроченные строки не удаляются и остаются как след аудита.
func (r *ActivationCodeRepository) MarkAsUsed(ctx context.Context, userID int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "activation_code"), zap.String("method", "MarkAsUsed"))

	query := `
        UPDATE activation_codes
        SET status = 'used', updated_at = (NOW() AT TIME ZONE 'UTC')
        WHERE user_id = $1 AND status = 'pending'
    `

	if _, err := r.pool.Exec(ctx, query, userID); err != nil {
		log.Error(ctx, "error marking activation codes as used", zap.Error(err))
		return fmt.Errorf("error marking activation codes as used: %w", err)
	}

	return nil
}
