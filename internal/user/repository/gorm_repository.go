package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tair/payments-api/internal/user/domain"
	"github.com/tair/payments-api/pkg/apperror"
)

// GormUserRepository implements UserRepository interface using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a new user into the database
func (r *GormUserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translate(err, "failed to create user")
	}
	return nil
}

// FindByID retrieves a user by ID, active or not
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User with ID %s not found", id)
		}
		return nil, apperror.Storage(err, "failed to find user")
	}
	return &user, nil
}

// FindActive retrieves active users, newest first
func (r *GormUserRepository) FindActive(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, apperror.Storage(err, "failed to find users")
	}
	return users, nil
}

// Update writes every column of user
func (r *GormUserRepository) Update(ctx context.Context, user *domain.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return translate(err, "failed to update user")
	}
	return nil
}

// Deactivate soft deletes a user by clearing is_active
func (r *GormUserRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return apperror.Storage(result.Error, "failed to deactivate user")
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("User with ID %s not found", id)
	}
	return nil
}

func translate(err error, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.Conflict(err, "email is already registered")
	}
	return apperror.Storage(err, msg)
}
