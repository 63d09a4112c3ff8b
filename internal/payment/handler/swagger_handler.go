package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// ListPayments godoc
// @Summary List payments
// @Description Filtered, paginated payments ordered by scheduled date, newest first
// @Tags Payments
// @Produce json
// @Param recipient query string false "Recipient substring; comma-separated values match any"
// @Param scheduledDateFrom query string false "Inclusive lower bound (YYYY-MM-DD or RFC 3339)"
// @Param scheduledDateTo query string false "Inclusive upper bound (YYYY-MM-DD or RFC 3339)"
// @Param limit query int false "Page size (default 10)"
// @Param offset query int false "Rows to skip (default 0)"
// @Success 200 {object} query.ResultPage
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /payments [get]
func (h *PaymentHandler) ListPaymentsDoc() {}

// ListRecipients godoc
// @Summary List recipients
// @Description Every distinct recipient, ascending
// @Tags Payments
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} object{error=string}
// @Router /payments/recipients [get]
func (h *PaymentHandler) ListRecipientsDoc() {}
