package command

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tair/payments-api/internal/user/domain"
	"github.com/tair/payments-api/pkg/validation"
)

// CreateUserCommand represents the command to create a user
type CreateUserCommand struct {
	Username  string  `json:"username" validate:"required,min=3,max=50"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=6"`
	FirstName *string `json:"firstName" validate:"omitempty,max=255"`
	LastName  *string `json:"lastName" validate:"omitempty,max=255"`
	Bio       *string `json:"bio"`
	Avatar    *string `json:"avatar" validate:"omitempty,max=255"`
}

// CreateUserHandler handles user creation command
type CreateUserHandler struct {
	repo domain.UserRepository
}

// NewCreateUserHandler creates a new create user handler
func NewCreateUserHandler(repo domain.UserRepository) *CreateUserHandler {
	return &CreateUserHandler{repo: repo}
}

// Handle executes the create user command
func (h *CreateUserHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*domain.User, error) {
	if err := validation.Struct(cmd); err != nil {
		return nil, err
	}

	hash, err := hashPassword(cmd.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:  cmd.Username,
		Email:     cmd.Email,
		Password:  hash,
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Bio:       cmd.Bio,
		Avatar:    cmd.Avatar,
		IsActive:  true,
	}

	if err := h.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
