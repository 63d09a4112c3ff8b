package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/tair/payments-api/internal/payment/domain"
	"github.com/tair/payments-api/internal/payment/usecase/query"
	"github.com/tair/payments-api/pkg/apperror"
	"github.com/tair/payments-api/pkg/logger"
	"github.com/tair/payments-api/pkg/middleware"
)

// PaymentHandler handles HTTP requests for payments using CQRS pattern
type PaymentHandler struct {
	// Query handlers
	listHandler       *query.ListPaymentsHandler
	recipientsHandler *query.ListRecipientsHandler

	metrics *middleware.Metrics
}

// NewPaymentHandler creates a new payment handler (manual DI)
func NewPaymentHandler(repo domain.PaymentRepository, metrics *middleware.Metrics) *PaymentHandler {
	return &PaymentHandler{
		listHandler:       query.NewListPaymentsHandler(repo),
		recipientsHandler: query.NewListRecipientsHandler(repo),
		metrics:           metrics,
	}
}

// NewPaymentHandlerWithDI creates a new payment handler using dependency injection
func NewPaymentHandlerWithDI(
	listHandler *query.ListPaymentsHandler,
	recipientsHandler *query.ListRecipientsHandler,
	metrics *middleware.Metrics,
) *PaymentHandler {
	return &PaymentHandler{
		listHandler:       listHandler,
		recipientsHandler: recipientsHandler,
		metrics:           metrics,
	}
}

// ListPayments handles GET /payments
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.respondError(w, r, err, "Invalid query parameters")
		return
	}

	page, err := h.listHandler.Handle(r.Context(), query.ListPaymentsQuery{Filter: filter})
	if err != nil {
		h.respondError(w, r, err, "Failed to list payments")
		return
	}

	h.respondJSON(w, http.StatusOK, page)
}

// ListRecipients handles GET /payments/recipients
func (h *PaymentHandler) ListRecipients(w http.ResponseWriter, r *http.Request) {
	recipients, err := h.recipientsHandler.Handle(r.Context())
	if err != nil {
		h.respondError(w, r, err, "Failed to list recipients")
		return
	}

	h.respondJSON(w, http.StatusOK, recipients)
}

// parseFilter validates query parameters before anything touches storage
func parseFilter(r *http.Request) (domain.FilterSet, error) {
	q := r.URL.Query()
	// repeated recipient params widen the OR group like comma-separated values
	filter := domain.FilterSet{Recipient: strings.Join(q["recipient"], ",")}

	if v := q.Get("scheduledDateFrom"); v != "" {
		d, err := domain.ParseDate(v)
		if err != nil {
			return domain.FilterSet{}, apperror.Validation("scheduledDateFrom must be a valid ISO 8601 date")
		}
		filter.ScheduledDateFrom = &d
	}
	if v := q.Get("scheduledDateTo"); v != "" {
		d, err := domain.ParseDate(v)
		if err != nil {
			return domain.FilterSet{}, apperror.Validation("scheduledDateTo must be a valid ISO 8601 date")
		}
		filter.ScheduledDateTo = &d
	}

	var err error
	if filter.Limit, err = nonNegativeInt(q.Get("limit"), "limit"); err != nil {
		return domain.FilterSet{}, err
	}
	if filter.Offset, err = nonNegativeInt(q.Get("offset"), "offset"); err != nil {
		return domain.FilterSet{}, err
	}

	return filter, nil
}

func nonNegativeInt(v, name string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, apperror.Validation("%s must be a non-negative integer", name)
	}
	return n, nil
}

func (h *PaymentHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError maps err to a status code. Server-side failures are logged and
// answered with fallback instead of the internal message.
func (h *PaymentHandler) respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := apperror.HTTPStatus(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context()).Err(err).Str("path", r.URL.Path).Msg(fallback)
		message = fallback
	}
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all payment routes
func (h *PaymentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/payments/recipients", h.metrics.Instrument("/payments/recipients", h.ListRecipients)).Methods("GET")
	router.HandleFunc("/payments", h.metrics.Instrument("/payments", h.ListPayments)).Methods("GET")
}
