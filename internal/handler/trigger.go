package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/citystroll/backend/internal/domain"
)

// handleRatingDeleted handles
// POST /events/tours/{tourID}/ratings/{ratingID}/deleted.
//
// This is the webhook surface of the rating-deleted trigger: the hosting
// platform invokes it once per deleted rating, after the record is gone. The
// body is ignored — identity comes from the path, mirroring the deleted
// document's path. Failures return 500 so the platform's own retry and
// dead-letter policy takes over; there is no local retry.
func (s *Server) handleRatingDeleted(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "tourID")
	ratingID := chi.URLParam(r, "ratingID")

	tour, err := s.ratings.Recalculate(r.Context(), tourID)
	switch {
	case err == nil:
		s.logger.InfoContext(r.Context(), "rating deletion processed",
			"tour_id", tourID,
			"rating_id", ratingID,
			"upvotes", tour.Upvotes,
			"downvotes", tour.Downvotes,
		)
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, domain.ErrNotFound):
		respondText(w, http.StatusNotFound, "Tour not found")
	default:
		s.logger.ErrorContext(r.Context(), "rating recalculation failed",
			"tour_id", tourID,
			"rating_id", ratingID,
			"error", err,
		)
		respondText(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
