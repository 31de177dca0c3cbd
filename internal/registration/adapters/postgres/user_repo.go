// Package postgres содержит реализации репозиториев поверх PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"enroll/internal/registration/domain/entities"
	"enroll/internal/registration/domain/valueobjects"
	"enroll/internal/registration/ports/repositories"
	"enroll/pkg/logger"
)

// Код ошибки PostgreSQL для нарушения уникальности.
const pgUniqueViolationCode = "23505"

// PgxPoolInterface описывает операции пула, используемые репозиториями.
// Выделен в интерфейс для подмены пула в тестах (pgxmock).
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// UserRepository реализует интерфейс repositories.UserRepository для работы с Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// scanUser преобразует строку результата в сущность пользователя.
func scanUser(row pgx.Row) (*entities.User, error) {
	var (
		id           int64
		publicUUID   uuid.UUID
		email        string
		passwordHash string
		status       string
	)

	if err := row.Scan(&id, &publicUUID, &email, &passwordHash, &status); err != nil {
		return nil, err
	}

	hash, err := valueobjects.NewPasswordHash(passwordHash)
	if err != nil {
		return nil, fmt.Errorf("restoring password hash: %w", err)
	}

	return &entities.User{
		ID:           id,
		PublicID:     valueobjects.UserPublicIDFromUUID(publicUUID),
		Email:        email,
		PasswordHash: hash,
		Status:       entities.UserStatus(status),
	}, nil
}

// Create создает нового пользователя со статусом pending.
// Публичный идентификатор генерируется здесь, в базе хранится только UUID.
func (r *UserRepository) Create(ctx context.Context, email string, passwordHash valueobjects.PasswordHash) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	publicID, err := valueobjects.NewUserPublicID()
	if err != nil {
		log.Error(ctx, "error generating public id", zap.Error(err))
		return nil, fmt.Errorf("generating public id: %w", err)
	}

	query := `
        INSERT INTO users (public_id, email, password_hash, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, public_id, email, password_hash, status
    `

	user, err := scanUser(r.pool.QueryRow(ctx, query,
		publicID.UUID(),
		email,
		passwordHash.Value(),
		string(entities.UserStatusPending),
	))

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			log.Debug(ctx, "email already registered", zap.String("email", email))
			return nil, fmt.Errorf("user with email %s: %w", email, entities.ErrUserAlreadyExists)
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// FindByID находит пользователя по внутреннему идентификатору.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	query := `
        SELECT id, public_id, email, password_hash, status
        FROM users
        WHERE id = $1
    `

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.Int64("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return user, nil
}

// FindByPublicID находит пользователя по публичному идентификатору.
func (r *UserRepository) FindByPublicID(ctx context.Context, publicID valueobjects.PublicID) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByPublicID"))

	query := `
        SELECT id, public_id, email, password_hash, status
        FROM users
        WHERE public_id = $1
    `

	user, err := scanUser(r.pool.QueryRow(ctx, query, publicID.UUID()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("publicID", publicID.String()))
			return nil, fmt.Errorf("user with public id %s: %w", publicID, entities.ErrUserNotFound)
		}
		log.Error(ctx, "error finding user by public id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by public id: %w", err)
	}

	return user, nil
}

// FindByEmail находит пользователя по email без учета регистра,
// в соответствии с уникальным индексом по LOWER(email).
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByEmail"))

	query := `
        SELECT id, public_id, email, password_hash, status
        FROM users
        WHERE LOWER(email) = LOWER($1)
    `

	user, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("email", email))
			return nil, fmt.Errorf("user with email %s: %w", email, entities.ErrUserNotFound)
		}
		log.Error(ctx, "error finding user by email", zap.Error(err))
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}

	return user, nil
}

// SetStatus устанавливает статус пользователя и возвращает свежий снимок.
// Операция идемпотентна: установка уже действующего статуса не ошибка.
func (r *UserRepository) SetStatus(ctx context.Context, id int64, status entities.UserStatus) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "SetStatus"))

	query := `
        UPDATE users
        SET status = $2, updated_at = (NOW() AT TIME ZONE 'UTC')
        WHERE id = $1
        RETURNING id, public_id, email, password_hash, status
    `

	user, err := scanUser(r.pool.QueryRow(ctx, query, id, string(status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found for status update", zap.Int64("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error updating user status", zap.Error(err))
		return nil, fmt.Errorf("error updating user status: %w", err)
	}

	return user, nil
}
