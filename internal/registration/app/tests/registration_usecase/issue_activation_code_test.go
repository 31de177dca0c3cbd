package registrationusecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"enroll/internal/registration/app"
	"enroll/internal/registration/domain/entities"
)

func TestIssueActivationCode(t *testing.T) {
	testEmail := "pending@example.com"
	testUserID := int64(42)
	codeTTL := time.Minute

	pendingUser := newTestUser(t, testUserID, testEmail, entities.UserStatusPending)

	tests := []struct {
		name         string
		userID       int64
		setupMocks   func(userRepo *mockUserRepository, codeRepo *mockActivationCodeRepository, emailSvc *mockEmailService)
		expectedErr  error
		errorContext string
	}{
		{
			name:   "Success - new code issued for existing user",
			userID: testUserID,
			setupMocks: func(userRepo *mockUserRepository, codeRepo *mockActivationCodeRepository, emailSvc *mockEmailService) {
				userRepo.On("FindByID", mock.Anything, testUserID).Return(pendingUser, nil).Once()

				codeRepo.On("Save", mock.Anything, mock.MatchedBy(func(c *entities.ActivationCode) bool {
					return c.UserID == testUserID &&
						fourDigitCode.MatchString(c.Code) &&
						c.Status == entities.ActivationCodeStatusPending
				})).Return(nil).Once()

				emailSvc.On("SendActivationCode", mock.Anything, testEmail, mock.MatchedBy(fourDigitCode.MatchString)).
					Return(nil).Once()
			},
		},
		{
			name:   "Error - user not found",
			userID: int64(999),
			setupMocks: func(userRepo *mockUserRepository, codeRepo *mockActivationCodeRepository, emailSvc *mockEmailService) {
				userRepo.On("FindByID", mock.Anything, int64(999)).
					Return(nil, entities.ErrUserNotFound).Once()
			},
			expectedErr:  entities.ErrUserNotFound,
			errorContext: "finding user",
		},
		{
			name:   "Error - code persistence failure",
			userID: testUserID,
			setupMocks: func(userRepo *mockUserRepository, codeRepo *mockActivationCodeRepository, emailSvc *mockEmailService) {
				userRepo.On("FindByID", mock.Anything, testUserID).Return(pendingUser, nil).Once()

				codeRepo.On("Save", mock.Anything, mock.Anything).
					Return(errors.New("insert failed")).Once()
			},
			expectedErr:  errors.New("insert failed"),
			errorContext: "saving activation code",
		},
		{
			name:   "Error - email dispatch failure after code persisted",
			userID: testUserID,
			setupMocks: func(userRepo *mockUserRepository, codeRepo *mockActivationCodeRepository, emailSvc *mockEmailService) {
				userRepo.On("FindByID", mock.Anything, testUserID).Return(pendingUser, nil).Once()

				codeRepo.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

				emailSvc.On("SendActivationCode", mock.Anything, testEmail, mock.Anything).
					Return(errors.New("smtp unavailable")).Once()
			},
			expectedErr:  errors.New("smtp unavailable"),
			errorContext: "sending activation code email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mockUserRepository)
			codeRepo := new(mockActivationCodeRepository)
			passwordSvc := new(mockPasswordService)
			emailSvc := new(mockEmailService)

			tt.setupMocks(userRepo, codeRepo, emailSvc)

			useCase := app.NewRegistrationUseCase(userRepo, codeRepo, passwordSvc, emailSvc, codeTTL)

			ctx := context.Background()
			user, err := useCase.IssueActivationCode(ctx, tt.userID)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContext)

				if errors.Is(err, entities.ErrUserNotFound) {
					assert.ErrorIs(t, err, tt.expectedErr)
				}

				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, pendingUser.PublicID, user.PublicID)
			}

			// Повторный выпуск не отзывает ранее выданные коды.
			codeRepo.AssertNotCalled(t, "MarkAsUsed", mock.Anything, mock.Anything)

			userRepo.AssertExpectations(t)
			codeRepo.AssertExpectations(t)
			emailSvc.AssertExpectations(t)
		})
	}
}
