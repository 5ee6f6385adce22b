// Package service provides the application services for the payment ledger,
// review integrity, and practice relationships.
package service

import "errors"

// Common service errors - sentinel errors used across service
// implementations. Callers check for them with errors.Is(); the API layer
// maps them to HTTP status codes.
//
// Error handling principles:
// 1. Services surface the first violation found, before any mutation
// 2. Expected conditions are sentinel errors (here, in store, or in domain)
// 3. Unexpected errors are wrapped in service-specific error types
// 4. Not-found and duplicate conditions pass through as store sentinels
var (
	// ErrCourtInactive indicates a practice relationship was requested for a
	// court that exists but is not in an active state.
	// API layer should map this to HTTP 400 Bad Request.
	ErrCourtInactive = errors.New("court is not active")
)
