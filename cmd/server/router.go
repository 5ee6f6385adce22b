package main

import (
	"net/http"

	"github.com/canchaclub/cancha-api/internal/api"
	apiMiddleware "github.com/canchaclub/cancha-api/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.MetricsMiddleware)

	paymentHandler := api.NewPaymentHandler(app.paymentService)
	reviewHandler := api.NewReviewHandler(app.reviewService)
	practiceHandler := api.NewPracticeHandler(app.practiceService)

	r.Route("/api/v1", func(r chi.Router) {
		// Payment ledger endpoints
		r.Route("/payments", func(r chi.Router) {
			r.Get("/", paymentHandler.ListPayments)
			r.Post("/", paymentHandler.CreatePayment)
			r.Get("/methods", paymentHandler.ListPaymentMethods)
			r.Get("/statuses", paymentHandler.ListPaymentStatuses)
			r.Get("/{id}", paymentHandler.GetPayment)
			r.Patch("/{id}", paymentHandler.UpdatePayment)
			r.Delete("/{id}", paymentHandler.DeletePayment)
		})

		// Review endpoints
		r.Route("/reviews", func(r chi.Router) {
			r.Post("/", reviewHandler.CreateReview)
			r.Get("/{id}", reviewHandler.GetReview)
			r.Patch("/{id}", reviewHandler.UpdateReview)
			r.Delete("/{id}", reviewHandler.DeleteReview)
		})

		// Reservation-scoped reads
		r.Route("/reservations/{id}", func(r chi.Router) {
			r.Get("/balance", paymentHandler.GetReservationBalance)
			r.Get("/reviews", reviewHandler.ListReviewsByReservation)
		})

		// Court-discipline association endpoints
		r.Route("/courts/{id}/disciplines", func(r chi.Router) {
			r.Get("/", practiceHandler.ListDisciplinesForCourt)
			r.Post("/", practiceHandler.AssociateDiscipline)
			r.Put("/{disciplineID}", practiceHandler.UpdateFrequency)
			r.Delete("/{disciplineID}", practiceHandler.DissociateDiscipline)
		})
		r.Get("/disciplines/{id}/courts", practiceHandler.ListCourtsForDiscipline)
	})

	// Health check endpoint
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Prometheus metrics
	r.Method(http.MethodGet, "/metrics",
		apiMiddleware.MetricsHandler(apiMiddleware.NewMetricsRegistry()))

	return r
}
