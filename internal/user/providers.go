package user

import (
	"gorm.io/gorm"

	"github.com/tair/payments-api/internal/user/domain"
	"github.com/tair/payments-api/internal/user/repository"
	"github.com/tair/payments-api/internal/user/usecase/command"
	"github.com/tair/payments-api/internal/user/usecase/query"
)

// ProvideGormUserRepository provides the PostgreSQL user repository with tracing
func ProvideGormUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewUserRepositoryWithTracing(repository.NewGormUserRepository(db))
}

// ProvideMemoryUserRepository provides the in-process user repository with tracing
func ProvideMemoryUserRepository() domain.UserRepository {
	return repository.NewUserRepositoryWithTracing(repository.NewMemoryUserRepository())
}

// Command Handlers Providers
func ProvideCreateUserHandler(repo domain.UserRepository) *command.CreateUserHandler {
	return command.NewCreateUserHandler(repo)
}

func ProvideUpdateUserHandler(repo domain.UserRepository) *command.UpdateUserHandler {
	return command.NewUpdateUserHandler(repo)
}

func ProvideDeleteUserHandler(repo domain.UserRepository) *command.DeleteUserHandler {
	return command.NewDeleteUserHandler(repo)
}

// Query Handlers Providers
func ProvideGetUserHandler(repo domain.UserRepository) *query.GetUserHandler {
	return query.NewGetUserHandler(repo)
}

func ProvideListUsersHandler(repo domain.UserRepository) *query.ListUsersHandler {
	return query.NewListUsersHandler(repo)
}
