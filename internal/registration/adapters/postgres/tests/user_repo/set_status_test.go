package userrepo_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enroll/internal/registration/adapters/postgres"
	"enroll/internal/registration/domain/entities"
)

func TestUserRepository_SetStatus(t *testing.T) {
	ctx := testContext(t)

	storedUUID := uuid.Must(uuid.NewV7())

	t.Run("Перевод pending пользователя в active", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE users .+").
			WithArgs(int64(7), string(entities.UserStatusActive)).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "public_id", "email", "password_hash", "status"}).
					AddRow(int64(7), storedUUID, "user@example.com", "$2a$10$hash", "active"),
			)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.SetStatus(ctx, 7, entities.UserStatusActive)

		require.NoError(t, err)
		assert.Equal(t, entities.UserStatusActive, user.Status)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Повторная установка того же статуса не ошибка", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE users .+").
			WithArgs(int64(7), string(entities.UserStatusActive)).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "public_id", "email", "password_hash", "status"}).
					AddRow(int64(7), storedUUID, "user@example.com", "$2a$10$hash", "active"),
			)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.SetStatus(ctx, 7, entities.UserStatusActive)

		require.NoError(t, err)
		assert.True(t, user.IsActive())

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Отсутствие пользователя переводится в ErrUserNotFound", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE users .+").
			WithArgs(int64(404), string(entities.UserStatusActive)).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.SetStatus(ctx, 404, entities.UserStatusActive)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
