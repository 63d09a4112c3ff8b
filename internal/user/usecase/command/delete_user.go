package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/tair/payments-api/internal/user/domain"
)

// DeleteUserCommand represents the command to soft delete a user
type DeleteUserCommand struct {
	ID uuid.UUID
}

// DeleteUserHandler handles user deletion command
type DeleteUserHandler struct {
	repo domain.UserRepository
}

// NewDeleteUserHandler creates a new delete user handler
func NewDeleteUserHandler(repo domain.UserRepository) *DeleteUserHandler {
	return &DeleteUserHandler{repo: repo}
}

// Handle marks the user inactive. The row is kept.
func (h *DeleteUserHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	return h.repo.Deactivate(ctx, cmd.ID)
}
