// Package handler implements the HTTP surface of the tour-guide backend.
// All handlers are methods on Server; each endpoint lives in its own file but
// shares the Server struct so it can access the wired services.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/citystroll/backend/internal/domain"
	"github.com/citystroll/backend/internal/middleware"
	"github.com/citystroll/backend/spec"
)

// Unsubscriber defines the opt-out operation the unsubscribe handler depends
// on. Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type Unsubscriber interface {
	Unsubscribe(ctx context.Context, authID, category string) (domain.User, error)
}

// DirectionsFetcher defines the route lookup the directions handler depends on.
type DirectionsFetcher interface {
	Fetch(ctx context.Context, q domain.DirectionsQuery) (domain.Directions, error)
}

// RatingRecalculator defines the counter recomputation the rating-deleted
// event handler depends on.
type RatingRecalculator interface {
	Recalculate(ctx context.Context, tourID string) (domain.Tour, error)
}

// Server holds the dependencies shared by all endpoint handlers.
type Server struct {
	unsubscribes Unsubscriber
	directions   DirectionsFetcher
	ratings      RatingRecalculator
	logger       *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default.
func NewServer(u Unsubscriber, d DirectionsFetcher, r RatingRecalculator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{unsubscribes: u, directions: d, ratings: r, logger: logger}
}

// Routes returns the router for the full API surface.
// The bearer gate sits only on /fetchDirections: unsubscribe links are opened
// from email clients with no way to attach a header, and the event route is
// reached from the trusted platform, not browsers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/openapi.yaml", s.handleOpenAPI)

	r.Get("/unsubscribeUser", s.handleUnsubscribe)
	r.With(middleware.RequireBearer).Get("/fetchDirections", s.handleFetchDirections)
	r.Post("/events/tours/{tourID}/ratings/{ratingID}/deleted", s.handleRatingDeleted)

	return r
}

// handleHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleOpenAPI serves the embedded API document.
func (s *Server) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
