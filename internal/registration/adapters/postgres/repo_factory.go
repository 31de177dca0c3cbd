package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"enroll/internal/registration/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	userRepo repositories.UserRepository
	codeRepo repositories.ActivationCodeRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool *pgxpool.Pool) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo: NewUserRepository(pool),
		codeRepo: NewActivationCodeRepository(pool),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// ActivationCodeRepository возвращает репозиторий кодов активации.
func (f *RepositoryFactory) ActivationCodeRepository() repositories.ActivationCodeRepository {
	return f.codeRepo
}
