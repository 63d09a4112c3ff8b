package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tair/payments-api/internal/user/domain"
	"github.com/tair/payments-api/pkg/validation"
)

// UpdateUserCommand represents a partial update; nil fields are left unchanged
type UpdateUserCommand struct {
	ID         uuid.UUID `json:"-"`
	Username   *string   `json:"username" validate:"omitempty,min=3,max=50"`
	Email      *string   `json:"email" validate:"omitempty,email"`
	Password   *string   `json:"password" validate:"omitempty,min=6"`
	FirstName  *string   `json:"firstName" validate:"omitempty,max=255"`
	LastName   *string   `json:"lastName" validate:"omitempty,max=255"`
	Bio        *string   `json:"bio"`
	Avatar     *string   `json:"avatar" validate:"omitempty,max=255"`
	IsVerified *bool     `json:"isVerified"`
	IsActive   *bool     `json:"isActive"`
}

// UpdateUserHandler handles user update command
type UpdateUserHandler struct {
	repo domain.UserRepository
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(repo domain.UserRepository) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo}
}

// Handle executes the update user command
func (h *UpdateUserHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*domain.User, error) {
	if err := validation.Struct(cmd); err != nil {
		return nil, err
	}

	user, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Username != nil {
		user.Username = *cmd.Username
	}
	if cmd.Email != nil {
		user.Email = *cmd.Email
	}
	if cmd.Password != nil {
		hash, err := hashPassword(*cmd.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}
	if cmd.FirstName != nil {
		user.FirstName = cmd.FirstName
	}
	if cmd.LastName != nil {
		user.LastName = cmd.LastName
	}
	if cmd.Bio != nil {
		user.Bio = cmd.Bio
	}
	if cmd.Avatar != nil {
		user.Avatar = cmd.Avatar
	}
	if cmd.IsVerified != nil {
		user.IsVerified = *cmd.IsVerified
	}
	if cmd.IsActive != nil {
		user.IsActive = *cmd.IsActive
	}

	if err := h.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
