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

// CreateReviewRequest represents the request body for creating a review
type CreateReviewRequest struct {
	ReservationID int64  `json:"reservation_id" validate:"required,gt=0"`
	Stars         int    `json:"stars"          validate:"required"`
	Comment       string `json:"comment"`
	Visible       *bool  `json:"visible,omitempty"`
}

// UpdateReviewRequest represents the request body for updating a review.
// All fields are optional; omitted fields keep their current values.
type UpdateReviewRequest struct {
	Stars   *int    `json:"stars,omitempty"`
	Comment *string `json:"comment,omitempty"`
	Visible *bool   `json:"visible,omitempty"`
}

// ReviewResponse represents the response data for a review
type ReviewResponse struct {
	ID            string    `json:"id"`
	ReservationID int64     `json:"reservation_id"`
	Stars         int       `json:"stars"`
	Comment       string    `json:"comment"`
	Visible       bool      `json:"visible"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	reviewService service.ReviewService
	validator     *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validator:     validator.New(),
	}
}

// CreateReview handles POST /api/v1/reviews requests
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	review, err := h.reviewService.CreateReview(r.Context(), service.CreateReviewInput{
		ReservationID: req.ReservationID,
		Stars:         req.Stars,
		Comment:       req.Comment,
		Visible:       req.Visible,
	})
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, "Review created", reviewToResponse(review))
}

// GetReview handles GET /api/v1/reviews/{id} requests
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	id, ok := parseReviewID(w, r)
	if !ok {
		return
	}

	review, err := h.reviewService.GetReview(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Review retrieved", reviewToResponse(review))
}

// ListReviewsByReservation handles GET /api/v1/reservations/{id}/reviews
// requests. An existing reservation with no review yields an empty list; a
// nonexistent reservation is a 404.
func (h *ReviewHandler) ListReviewsByReservation(w http.ResponseWriter, r *http.Request) {
	reservationID, err := shared.ParseInt64Param(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid reservation ID")
		return
	}

	reviews, err := h.reviewService.ListReviewsByReservation(r.Context(), reservationID)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	responses := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, reviewToResponse(review))
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Reviews retrieved", responses)
}

// UpdateReview handles PATCH /api/v1/reviews/{id} requests
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := parseReviewID(w, r)
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	review, err := h.reviewService.UpdateReview(r.Context(), id, service.UpdateReviewInput{
		Stars:   req.Stars,
		Comment: req.Comment,
		Visible: req.Visible,
	})
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Review updated", reviewToResponse(review))
}

// DeleteReview handles DELETE /api/v1/reviews/{id} requests
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := parseReviewID(w, r)
	if !ok {
		return
	}

	if err := h.reviewService.DeleteReview(r.Context(), id); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Review deleted", nil)
}

// parseReviewID extracts and parses the review UUID from the URL. On
// failure it writes the error response and returns ok=false.
func parseReviewID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid review ID")
		return uuid.Nil, false
	}
	return id, true
}

// reviewToResponse converts a domain.Review to a ReviewResponse
func reviewToResponse(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:            review.ID.String(),
		ReservationID: review.ReservationID,
		Stars:         review.Stars,
		Comment:       review.Comment,
		Visible:       review.Visible,
		CreatedAt:     review.CreatedAt,
		UpdatedAt:     review.UpdatedAt,
	}
}
