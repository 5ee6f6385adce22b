package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/canchaclub/cancha-api/internal/api/shared"
	"github.com/canchaclub/cancha-api/internal/domain"
	"github.com/canchaclub/cancha-api/internal/service"
	"github.com/canchaclub/cancha-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrPaymentNotFound),
		errors.Is(err, store.ErrReviewNotFound),
		errors.Is(err, store.ErrReservationNotFound),
		errors.Is(err, store.ErrCourtNotFound),
		errors.Is(err, store.ErrDisciplineNotFound),
		errors.Is(err, store.ErrAssociationNotFound):
		return http.StatusNotFound

	// Invariant violations are client-correctable, same as validation
	case errors.Is(err, store.ErrDuplicateReview),
		errors.Is(err, store.ErrDuplicateAssociation):
		return http.StatusBadRequest

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrInvalidFrequency),
		errors.Is(err, domain.ErrInvalidEnumValue),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, service.ErrCourtInactive),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// A missing enum type is a schema problem, not a client problem
	case errors.Is(err, store.ErrEnumTypeNotFound):
		return http.StatusInternalServerError

	// Catch-all for remaining not-found wraps
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	// Enum rejections name the offending value and the permitted set; that
	// is client-facing information by design of the error type.
	var enumErr *domain.InvalidEnumError
	if errors.As(err, &enumErr) {
		return fmt.Sprintf("Invalid %s %q: permitted values are %s",
			enumErr.Field, enumErr.Value, strings.Join(enumErr.Allowed, ", "))
	}

	switch {
	case errors.Is(err, store.ErrPaymentNotFound):
		return "Payment not found"

	case errors.Is(err, store.ErrReviewNotFound):
		return "Review not found"

	case errors.Is(err, store.ErrReservationNotFound):
		return "Reservation not found"

	case errors.Is(err, store.ErrCourtNotFound):
		return "Court not found"

	case errors.Is(err, store.ErrDisciplineNotFound):
		return "Discipline not found"

	case errors.Is(err, store.ErrAssociationNotFound):
		return "Court is not associated with this discipline"

	case errors.Is(err, store.ErrDuplicateReview):
		return "This reservation already has a review"

	case errors.Is(err, store.ErrDuplicateAssociation):
		return "Court is already associated with this discipline"

	case errors.Is(err, domain.ErrInvalidAmount):
		return "Payment amount must be positive and must not exceed the reservation's outstanding balance"

	case errors.Is(err, domain.ErrInvalidRating):
		return fmt.Sprintf("Stars must be between %d and %d", domain.MinStars, domain.MaxStars)

	case errors.Is(err, domain.ErrInvalidFrequency):
		return fmt.Sprintf("Frequency must be one of %v", domain.Frequencies())

	case errors.Is(err, service.ErrCourtInactive):
		return "Court is not active"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// RespondWithMappedError maps the error to a status code and a safe message
// in one step. Handlers call this for any service-layer failure.
func RespondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
