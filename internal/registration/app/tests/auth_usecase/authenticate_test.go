package authusecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"enroll/internal/registration/app"
	"enroll/internal/registration/domain/entities"
	"enroll/internal/registration/domain/valueobjects"
)

func newStoredUser(t *testing.T, email string) *entities.User {
	t.Helper()

	publicID, err := valueobjects.NewUserPublicID()
	require.NoError(t, err)

	hash, err := valueobjects.NewPasswordHash("$2a$10$stored-hash")
	require.NoError(t, err)

	return &entities.User{
		ID:           1,
		PublicID:     publicID,
		Email:        email,
		PasswordHash: hash,
		Status:       entities.UserStatusPending,
	}
}

func TestAuthenticate(t *testing.T) {
	testEmail := "user@example.com"
	testPassword := "Sup3rSecret!"

	storedUser := newStoredUser(t, testEmail)

	tests := []struct {
		name        string
		email       string
		password    string
		setupMocks  func(userRepo *mockUserRepository, passwordSvc *mockPasswordService)
		expectedErr error
	}{
		{
			name:     "Success - valid credentials for pending user",
			email:    testEmail,
			password: testPassword,
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService) {
				userRepo.On("FindByEmail", mock.Anything, testEmail).Return(storedUser, nil).Once()
				passwordSvc.On("Verify", mock.Anything, mock.MatchedBy(func(p valueobjects.Password) bool {
					return p.Value() == testPassword
				}), storedUser.PasswordHash).Return(true, nil).Once()
			},
		},
		{
			name:     "Unauthorized - empty email",
			email:    "",
			password: testPassword,
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService) {
			},
			expectedErr: entities.ErrUnauthorized,
		},
		{
			name:     "Unauthorized - empty password",
			email:    testEmail,
			password: "",
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService) {
			},
			expectedErr: entities.ErrUnauthorized,
		},
		{
			name:     "Unauthorized - unknown email",
			email:    "nobody@example.com",
			password: testPassword,
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService) {
				userRepo.On("FindByEmail", mock.Anything, "nobody@example.com").
					Return(nil, entities.ErrUserNotFound).Once()
			},
			expectedErr: entities.ErrUnauthorized,
		},
		{
			name:     "Unauthorized - password fails policy before hashing",
			email:    testEmail,
			password: "short",
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService) {
				userRepo.On("FindByEmail", mock.Anything, testEmail).Return(storedUser, nil).Once()
			},
			expectedErr: entities.ErrUnauthorized,
		},
		{
			name:     "Unauthorized - password does not match stored hash",
			email:    testEmail,
			password: "Wr0ngSecret!",
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService) {
				userRepo.On("FindByEmail", mock.Anything, testEmail).Return(storedUser, nil).Once()
				passwordSvc.On("Verify", mock.Anything, mock.Anything, storedUser.PasswordHash).
					Return(false, nil).Once()
			},
			expectedErr: entities.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mockUserRepository)
			passwordSvc := new(mockPasswordService)

			tt.setupMocks(userRepo, passwordSvc)

			useCase := app.NewAuthUseCase(userRepo, passwordSvc)

			ctx := context.Background()
			user, err := useCase.Authenticate(ctx, tt.email, tt.password)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)

				// Все пути отказа неразличимы для вызывающей стороны.
				assert.Equal(t, entities.ErrUnauthorized.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, storedUser.PublicID, user.PublicID)
			}

			userRepo.AssertExpectations(t)
			passwordSvc.AssertExpectations(t)
		})
	}
}

func TestAuthenticateInfrastructureErrors(t *testing.T) {
	testEmail := "user@example.com"
	testPassword := "Sup3rSecret!"

	storedUser := newStoredUser(t, testEmail)

	t.Run("repository error is not masked as unauthorized", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)

		userRepo.On("FindByEmail", mock.Anything, testEmail).
			Return(nil, errors.New("connection refused")).Once()

		useCase := app.NewAuthUseCase(userRepo, passwordSvc)

		user, err := useCase.Authenticate(context.Background(), testEmail, testPassword)

		require.Error(t, err)
		assert.NotErrorIs(t, err, entities.ErrUnauthorized)
		assert.Contains(t, err.Error(), "looking up user")
		assert.Nil(t, user)
	})

	t.Run("verification error is not masked as unauthorized", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)

		userRepo.On("FindByEmail", mock.Anything, testEmail).Return(storedUser, nil).Once()
		passwordSvc.On("Verify", mock.Anything, mock.Anything, storedUser.PasswordHash).
			Return(false, errors.New("hash corrupted")).Once()

		useCase := app.NewAuthUseCase(userRepo, passwordSvc)

		user, err := useCase.Authenticate(context.Background(), testEmail, testPassword)

		require.Error(t, err)
		assert.NotErrorIs(t, err, entities.ErrUnauthorized)
		assert.Contains(t, err.Error(), "verifying password")
		assert.Nil(t, user)
	})
}
