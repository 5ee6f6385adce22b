package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/canchaclub/cancha-api/internal/config"
	"github.com/canchaclub/cancha-api/internal/platform/postgres"
	"github.com/canchaclub/cancha-api/internal/service"
)

// application holds the assembled dependencies of the server: configuration,
// the shared logger, the database handle, and the services behind the HTTP
// handlers.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	paymentService  service.PaymentService
	reviewService   service.ReviewService
	practiceService service.PracticeService
}

// newApplication wires stores and services over a fresh database connection.
func newApplication(cfg *config.Config, appLogger *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	paymentStore := postgres.NewPostgresPaymentStore(db, appLogger)
	reservationStore := postgres.NewPostgresReservationStore(db, appLogger)
	reviewStore := postgres.NewPostgresReviewStore(db, appLogger)
	practiceStore := postgres.NewPostgresPracticeStore(db, appLogger)
	catalogStore := postgres.NewPostgresCatalogStore(db, appLogger)
	enumStore := postgres.NewPostgresEnumStore(db, appLogger)

	paymentService, err := service.NewPaymentService(
		db, paymentStore, reservationStore, enumStore, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment service: %w", err)
	}

	reviewService, err := service.NewReviewService(reviewStore, reservationStore, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create review service: %w", err)
	}

	practiceService, err := service.NewPracticeService(
		practiceStore, catalogStore, catalogStore.Disciplines(), appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create practice service: %w", err)
	}

	return &application{
		config:          cfg,
		logger:          appLogger,
		db:              db,
		paymentService:  paymentService,
		reviewService:   reviewService,
		practiceService: practiceService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
