package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/citystroll/backend/internal/domain"
)

// attemptModes is the fixed fallback plan for a directions lookup: try a
// pedestrian route first, fall back to a driving route when the first attempt
// yields nothing. Exactly one external call per entry, no backoff.
var attemptModes = [...]domain.TravelMode{domain.ModeWalking, domain.ModeDriving}

// RouteFetcher is the external directions API as seen by this service.
// Implemented by directions.Client; tests substitute a mock.
type RouteFetcher interface {
	// Route resolves a query in the given travel mode to an encoded path.
	// Zero-result responses and transport failures are both plain errors:
	// the fallback plan treats them identically.
	Route(ctx context.Context, q domain.DirectionsQuery, mode domain.TravelMode) (domain.Directions, error)

	// RequestURL returns the URL Route would request for diagnostics.
	// Implementations must not include credentials in the returned string.
	RequestURL(q domain.DirectionsQuery, mode domain.TravelMode) string
}

// DirectionsService proxies route lookups to the external mapping API with a
// bounded mode-fallback plan.
type DirectionsService struct {
	fetcher RouteFetcher
}

// NewDirectionsService constructs a DirectionsService over the given fetcher.
func NewDirectionsService(fetcher RouteFetcher) *DirectionsService {
	return &DirectionsService{fetcher: fetcher}
}

// Attempt records the outcome of one failed external call, kept for the
// diagnostics surfaced when the whole plan is exhausted.
type Attempt struct {
	Mode domain.TravelMode
	URL  string
	Err  error
}

// RouteUnavailableError is returned when every entry of the fallback plan has
// failed. It carries the query parameters and the per-attempt causes so the
// 500 response and the logs can show what was actually tried.
type RouteUnavailableError struct {
	Query    domain.DirectionsQuery
	Attempts []Attempt
}

func (e *RouteUnavailableError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "no route found for origin=%s destination=%s", e.Query.OriginPlaceID, e.Query.DestinationPlaceID)
	if e.Query.Waypoints != "" {
		fmt.Fprintf(&b, " waypoints=%s", e.Query.Waypoints)
	}
	if n := len(e.Attempts); n > 0 {
		fmt.Fprintf(&b, " last_url=%s", e.Attempts[n-1].URL)
	}
	for _, a := range e.Attempts {
		fmt.Fprintf(&b, "; %s: %v", a.Mode, a.Err)
	}
	return b.String()
}

// Fetch validates the query and walks the fallback plan until one mode yields
// a route. Missing place IDs fail validation before any external call is
// made. When the plan is exhausted the returned error is a
// *RouteUnavailableError carrying the accumulated diagnostics.
func (s *DirectionsService) Fetch(ctx context.Context, q domain.DirectionsQuery) (domain.Directions, error) {
	if q.OriginPlaceID == "" {
		return domain.Directions{}, fmt.Errorf("service.DirectionsService.Fetch: %w: originPlaceId is required",
			domain.ErrValidation)
	}
	if q.DestinationPlaceID == "" {
		return domain.Directions{}, fmt.Errorf("service.DirectionsService.Fetch: %w: destinationPlaceId is required",
			domain.ErrValidation)
	}

	attempts := make([]Attempt, 0, len(attemptModes))
	for _, mode := range attemptModes {
		route, err := s.fetcher.Route(ctx, q, mode)
		if err == nil {
			return route, nil
		}
		attempts = append(attempts, Attempt{
			Mode: mode,
			URL:  s.fetcher.RequestURL(q, mode),
			Err:  err,
		})
	}

	return domain.Directions{}, &RouteUnavailableError{Query: q, Attempts: attempts}
}
