package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/tair/payments-api/internal/user/domain"
	"github.com/tair/payments-api/internal/user/usecase/command"
	"github.com/tair/payments-api/internal/user/usecase/query"
	"github.com/tair/payments-api/kafka"
	"github.com/tair/payments-api/pkg/apperror"
	"github.com/tair/payments-api/pkg/logger"
	"github.com/tair/payments-api/pkg/middleware"
)

// EventPublisher announces user lifecycle changes
type EventPublisher interface {
	PublishUserEvent(ctx context.Context, event kafka.UserEvent) error
}

// UserHandler handles HTTP requests for users
type UserHandler struct {
	// Command handlers
	createHandler *command.CreateUserHandler
	updateHandler *command.UpdateUserHandler
	deleteHandler *command.DeleteUserHandler

	// Query handlers
	getUserHandler *query.GetUserHandler
	listHandler    *query.ListUsersHandler

	metrics   *middleware.Metrics
	publisher EventPublisher
}

// NewUserHandler creates a new user handler (manual DI)
func NewUserHandler(repo domain.UserRepository, metrics *middleware.Metrics) *UserHandler {
	return &UserHandler{
		createHandler:  command.NewCreateUserHandler(repo),
		updateHandler:  command.NewUpdateUserHandler(repo),
		deleteHandler:  command.NewDeleteUserHandler(repo),
		getUserHandler: query.NewGetUserHandler(repo),
		listHandler:    query.NewListUsersHandler(repo),
		metrics:        metrics,
	}
}

// NewUserHandlerWithDI creates a new user handler using dependency injection
func NewUserHandlerWithDI(
	createHandler *command.CreateUserHandler,
	updateHandler *command.UpdateUserHandler,
	deleteHandler *command.DeleteUserHandler,
	getUserHandler *query.GetUserHandler,
	listHandler *query.ListUsersHandler,
	metrics *middleware.Metrics,
) *UserHandler {
	return &UserHandler{
		createHandler:  createHandler,
		updateHandler:  updateHandler,
		deleteHandler:  deleteHandler,
		getUserHandler: getUserHandler,
		listHandler:    listHandler,
		metrics:        metrics,
	}
}

// WithPublisher enables user events; a nil publisher disables them
func (h *UserHandler) WithPublisher(publisher EventPublisher) *UserHandler {
	h.publisher = publisher
	return h
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateUserCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	user, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, r, err, "Failed to create user")
		return
	}

	h.publish(r.Context(), kafka.EventTypeUserCreated, user)
	h.respondJSON(w, http.StatusCreated, user)
}

// GetUser handles GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	user, err := h.getUserHandler.Handle(r.Context(), query.GetUserQuery{ID: id})
	if err != nil {
		h.respondError(w, r, err, "Failed to get user")
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.listHandler.Handle(r.Context(), query.ListUsersQuery{})
	if err != nil {
		h.respondError(w, r, err, "Failed to list users")
		return
	}

	h.respondJSON(w, http.StatusOK, users)
}

// UpdateUser handles PUT /users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var cmd command.UpdateUserCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	cmd.ID = id

	user, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, r, err, "Failed to update user")
		return
	}

	h.publish(r.Context(), kafka.EventTypeUserUpdated, user)
	h.respondJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteUserCommand{ID: id}); err != nil {
		h.respondError(w, r, err, "Failed to delete user")
		return
	}

	h.publish(r.Context(), kafka.EventTypeUserDeactivated, &domain.User{ID: id})
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "User soft deleted successfully"})
}

func (h *UserHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid user ID"})
		return uuid.Nil, false
	}
	return id, true
}

// publish is best effort: the write already succeeded
func (h *UserHandler) publish(ctx context.Context, eventType string, user *domain.User) {
	if h.publisher == nil {
		return
	}
	err := h.publisher.PublishUserEvent(ctx, kafka.UserEvent{
		EventType: eventType,
		UserID:    user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		IsActive:  user.IsActive,
	})
	if err != nil {
		logger.Warn(ctx).Err(err).
			Str("event_type", eventType).
			Str("user_id", user.ID.String()).
			Msg("Failed to publish user event")
	}
}

func (h *UserHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *UserHandler) respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := apperror.HTTPStatus(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context()).Err(err).Str("path", r.URL.Path).Msg(fallback)
		message = fallback
	}
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/users", h.metrics.Instrument("/users", h.CreateUser)).Methods("POST")
	router.HandleFunc("/users", h.metrics.Instrument("/users", h.ListUsers)).Methods("GET")
	router.HandleFunc("/users/{id}", h.metrics.Instrument("/users/{id}", h.GetUser)).Methods("GET")
	router.HandleFunc("/users/{id}", h.metrics.Instrument("/users/{id}", h.UpdateUser)).Methods("PUT")
	router.HandleFunc("/users/{id}", h.metrics.Instrument("/users/{id}", h.DeleteUser)).Methods("DELETE")
}
