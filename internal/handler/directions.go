package handler

import (
	"errors"
	"net/http"

	"github.com/citystroll/backend/internal/domain"
)

// handleFetchDirections handles GET /fetchDirections.
// The bearer gate runs as middleware before this handler, so by the time we
// get here the request is authenticated.
//
// On exhaustion of the fallback plan the 500 body carries the full diagnostic
// string (place IDs and last attempted URL, key redacted) so a failing lookup
// can be reproduced from the client's error report alone.
func (s *Server) handleFetchDirections(w http.ResponseWriter, r *http.Request) {
	q := domain.DirectionsQuery{
		OriginPlaceID:      r.URL.Query().Get("originPlaceId"),
		DestinationPlaceID: r.URL.Query().Get("destinationPlaceId"),
		Waypoints:          r.URL.Query().Get("waypoints"),
	}

	route, err := s.directions.Fetch(r.Context(), q)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, route)
	case errors.Is(err, domain.ErrValidation):
		respondText(w, http.StatusBadRequest, "originPlaceId and destinationPlaceId are required")
	default:
		s.logger.ErrorContext(r.Context(), "directions lookup failed",
			"origin_place_id", q.OriginPlaceID,
			"destination_place_id", q.DestinationPlaceID,
			"error", err,
		)
		respondText(w, http.StatusInternalServerError, err.Error())
	}
}
