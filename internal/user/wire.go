//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"

	"github.com/tair/payments-api/internal/user/delivery/http"
	"github.com/tair/payments-api/internal/user/domain"
	"github.com/tair/payments-api/pkg/middleware"
)

// Wire sets
var CommandHandlerSet = wire.NewSet(
	ProvideCreateUserHandler,
	ProvideUpdateUserHandler,
	ProvideDeleteUserHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetUserHandler,
	ProvideListUsersHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(repo domain.UserRepository, metrics *middleware.Metrics) (*http.UserHandler, error) {
	wire.Build(
		CommandHandlerSet,
		QueryHandlerSet,
		http.NewUserHandlerWithDI,
	)
	return nil, nil
}
