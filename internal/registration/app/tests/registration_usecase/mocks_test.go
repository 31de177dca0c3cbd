package registrationusecase_test

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"enroll/internal/registration/domain/entities"
	"enroll/internal/registration/domain/valueobjects"
)

const (
	ErrCreateUser       = "failed to create user"
	ErrFindUserByID     = "failed to find user by ID"
	ErrFindUserByPubID  = "failed to find user by public ID"
	ErrFindUserByEmail  = "failed to find user by email"
	ErrSetUserStatus    = "failed to set user status"
	ErrSaveCode         = "failed to save activation code"
	ErrFindCode         = "failed to find activation code"
	ErrMarkCodeUsed     = "failed to mark activation code as used"
	ErrSendCodeEmail    = "failed to send activation code email"
	ErrHashPasswordMock = "failed to hash password"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, email string, passwordHash valueobjects.PasswordHash) (*entities.User, error) {
	args := m.Called(ctx, email, passwordHash)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCreateUser, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.User), nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindUserByID, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.User), nil
}

func (m *mockUserRepository) FindByPublicID(ctx context.Context, publicID valueobjects.PublicID) (*entities.User, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindUserByPubID, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.User), nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindUserByEmail, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.User), nil
}

func (m *mockUserRepository) SetStatus(ctx context.Context, id int64, status entities.UserStatus) (*entities.User, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrSetUserStatus, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.User), nil
}

type mockActivationCodeRepository struct {
	mock.Mock
}

func (m *mockActivationCodeRepository) Save(ctx context.Context, code *entities.ActivationCode) error {
	err := m.Called(ctx, code).Error(0)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrSaveCode, err)
	}
	return nil
}

func (m *mockActivationCodeRepository) FindByUserIDAndCode(ctx context.Context, userID int64, code string) (*entities.ActivationCode, error) {
	args := m.Called(ctx, userID, code)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindCode, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.ActivationCode), nil
}

func (m *mockActivationCodeRepository) MarkAsUsed(ctx context.Context, userID int64) error {
	err := m.Called(ctx, userID).Error(0)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMarkCodeUsed, err)
	}
	return nil
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password valueobjects.Password) (valueobjects.PasswordHash, error) {
	args := m.Called(ctx, password)
	err := args.Error(1)
	if err != nil {
		return valueobjects.PasswordHash{}, fmt.Errorf("%s: %w", ErrHashPasswordMock, err)
	}
	return args.Get(0).(valueobjects.PasswordHash), nil
}

func (m *mockPasswordService) Verify(ctx context.Context, password valueobjects.Password, hash valueobjects.PasswordHash) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendActivationCode(ctx context.Context, email, code string) error {
	err := m.Called(ctx, email, code).Error(0)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrSendCodeEmail, err)
	}
	return nil
}
