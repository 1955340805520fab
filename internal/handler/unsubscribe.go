package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/citystroll/backend/internal/domain"
)

// handleUnsubscribe handles GET /unsubscribeUser?authId=&emailCategory=.
//
// The endpoint is a GET because it is the target of a link in an email; the
// response bodies are plain text for the same reason. Validation failures are
// reported before the store is touched.
func (s *Server) handleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	authID := r.URL.Query().Get("authId")
	category := r.URL.Query().Get("emailCategory")

	if authID == "" {
		respondText(w, http.StatusBadRequest, "Auth ID is required")
		return
	}
	if !domain.ValidAuthID(authID) {
		respondText(w, http.StatusBadRequest, "Invalid Auth ID format")
		return
	}
	if category == "" {
		respondText(w, http.StatusBadRequest, "Email category is required")
		return
	}

	_, err := s.unsubscribes.Unsubscribe(r.Context(), authID, category)
	switch {
	case err == nil:
		respondText(w, http.StatusOK, fmt.Sprintf("Successfully unsubscribed from %s emails.", category))
	case errors.Is(err, domain.ErrValidation):
		respondText(w, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, domain.ErrNotFound):
		respondText(w, http.StatusNotFound, "User not found")
	default:
		s.logger.ErrorContext(r.Context(), "unsubscribe failed",
			"auth_id", authID,
			"email_category", category,
			"error", err,
		)
		respondText(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
