package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tair/payments-api/internal/user/domain"
	"github.com/tair/payments-api/pkg/apperror"
)

// MemoryUserRepository keeps users in process for STORE_DRIVER=memory
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
}

// NewMemoryUserRepository creates an empty in-memory user repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[uuid.UUID]domain.User)}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(user.Email, uuid.Nil) {
		return apperror.Conflict(nil, "email is already registered")
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, apperror.NotFound("User with ID %s not found", id)
	}
	return &user, nil
}

func (r *MemoryUserRepository) FindActive(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		if u.IsActive {
			users = append(users, u)
		}
	}
	r.mu.RUnlock()

	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID.String() < users[j].ID.String()
		}
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

func (r *MemoryUserRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return apperror.NotFound("User with ID %s not found", user.ID)
	}
	if r.emailTaken(user.Email, user.ID) {
		return apperror.Conflict(nil, "email is already registered")
	}
	user.UpdatedAt = time.Now().UTC()
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return apperror.NotFound("User with ID %s not found", id)
	}
	user.IsActive = false
	user.UpdatedAt = time.Now().UTC()
	r.users[id] = user
	return nil
}

// emailTaken must be called with mu held
func (r *MemoryUserRepository) emailTaken(email string, except uuid.UUID) bool {
	for id, u := range r.users {
		if id != except && u.Email == email {
			return true
		}
	}
	return false
}
