package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents the user entity (domain model)
type User struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username   string    `json:"username" gorm:"type:varchar(255);not null"`
	Email      string    `json:"email" gorm:"type:varchar(255);uniqueIndex:uq_users_email;not null"`
	Password   string    `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash, never exposed
	FirstName  *string   `json:"firstName,omitempty" gorm:"type:varchar(255)"`
	LastName   *string   `json:"lastName,omitempty" gorm:"type:varchar(255)"`
	Bio        *string   `json:"bio,omitempty" gorm:"type:text"`
	Avatar     *string   `json:"avatar,omitempty" gorm:"type:varchar(255)"`
	IsVerified bool      `json:"isVerified" gorm:"not null;default:false"`
	IsActive   bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the identifier
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserRepository defines the contract for user data access.
// Lookups of unknown ids return an apperror NotFound; a taken email returns Conflict.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindActive(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user *User) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}
