package api

import (
	"net/http"
	"time"

	"github.com/canchaclub/cancha-api/internal/api/shared"
	"github.com/canchaclub/cancha-api/internal/domain"
	"github.com/canchaclub/cancha-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreatePaymentRequest represents the request body for recording a payment
type CreatePaymentRequest struct {
	ReservationID int64      `json:"reservation_id" validate:"required,gt=0"`
	AmountCents   int64      `json:"amount_cents"   validate:"required"`
	Method        string     `json:"method"         validate:"required"`
	Status        string     `json:"status"         validate:"required"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

// UpdatePaymentRequest represents the request body for amending a payment.
// All fields are optional; omitted fields keep their current values.
type UpdatePaymentRequest struct {
	ReservationID *int64     `json:"reservation_id,omitempty" validate:"omitempty,gt=0"`
	AmountCents   *int64     `json:"amount_cents,omitempty"`
	Method        *string    `json:"method,omitempty"`
	Status        *string    `json:"status,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

// PaymentResponse represents the response data for a payment
type PaymentResponse struct {
	ID            string    `json:"id"`
	ReservationID int64     `json:"reservation_id"`
	AmountCents   int64     `json:"amount_cents"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	PaidAt        time.Time `json:"paid_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ReservationBalanceResponse represents the balance view of a reservation
type ReservationBalanceResponse struct {
	ReservationID    int64 `json:"reservation_id"`
	TotalCents       int64 `json:"total_cents"`
	OutstandingCents int64 `json:"outstanding_cents"`
}

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService service.PaymentService
	validator      *validator.Validate
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		validator:      validator.New(),
	}
}

// CreatePayment handles POST /api/v1/payments requests
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	input := service.RecordPaymentInput{
		ReservationID: req.ReservationID,
		AmountCents:   req.AmountCents,
		Method:        req.Method,
		Status:        req.Status,
	}
	if req.PaidAt != nil {
		input.PaidAt = *req.PaidAt
	}

	payment, err := h.paymentService.RecordPayment(r.Context(), input)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, "Payment recorded", paymentToResponse(payment))
}

// GetPayment handles GET /api/v1/payments/{id} requests
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePaymentID(w, r)
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPayment(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Payment retrieved", paymentToResponse(payment))
}

// ListPayments handles GET /api/v1/payments requests
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.ListPayments(r.Context())
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	responses := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, paymentToResponse(p))
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Payments retrieved", responses)
}

// UpdatePayment handles PATCH /api/v1/payments/{id} requests
func (h *PaymentHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePaymentID(w, r)
	if !ok {
		return
	}

	var req UpdatePaymentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	payment, err := h.paymentService.AmendPayment(r.Context(), id, service.AmendPaymentInput{
		ReservationID: req.ReservationID,
		AmountCents:   req.AmountCents,
		Method:        req.Method,
		Status:        req.Status,
		PaidAt:        req.PaidAt,
	})
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Payment updated", paymentToResponse(payment))
}

// DeletePayment handles DELETE /api/v1/payments/{id} requests. The deleted
// record is returned so callers can audit what was removed.
func (h *PaymentHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePaymentID(w, r)
	if !ok {
		return
	}

	payment, err := h.paymentService.RemovePayment(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Payment deleted", paymentToResponse(payment))
}

// ListPaymentMethods handles GET /api/v1/payments/methods requests
func (h *PaymentHandler) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.paymentService.ListPaymentMethods(r.Context())
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Payment methods retrieved", methods)
}

// ListPaymentStatuses handles GET /api/v1/payments/statuses requests
func (h *PaymentHandler) ListPaymentStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.paymentService.ListPaymentStatuses(r.Context())
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Payment statuses retrieved", statuses)
}

// GetReservationBalance handles GET /api/v1/reservations/{id}/balance requests
func (h *PaymentHandler) GetReservationBalance(w http.ResponseWriter, r *http.Request) {
	reservationID, err := shared.ParseInt64Param(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid reservation ID")
		return
	}

	reservation, err := h.paymentService.GetReservationBalance(r.Context(), reservationID)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Reservation balance retrieved",
		ReservationBalanceResponse{
			ReservationID:    reservation.ID,
			TotalCents:       reservation.TotalCents,
			OutstandingCents: reservation.OutstandingCents,
		})
}

// parsePaymentID extracts and parses the payment UUID from the URL. On
// failure it writes the error response and returns ok=false.
func parsePaymentID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid payment ID")
		return uuid.Nil, false
	}
	return id, true
}

// paymentToResponse converts a domain.Payment to a PaymentResponse
func paymentToResponse(payment *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID.String(),
		ReservationID: payment.ReservationID,
		AmountCents:   payment.AmountCents,
		Method:        payment.Method,
		Status:        payment.Status,
		PaidAt:        payment.PaidAt,
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}
}
