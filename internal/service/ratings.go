package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/citystroll/backend/internal/domain"
	"github.com/citystroll/backend/internal/repo"
)

// RatingsService recomputes a tour's denormalized vote counters from the
// ratings table, which is the source of truth.
type RatingsService struct {
	ratings repo.RatingRepo
	tours   repo.TourRepo
	logger  *slog.Logger
}

// NewRatingsService constructs a RatingsService backed by the provided repos.
// A nil logger falls back to slog.Default.
func NewRatingsService(ratings repo.RatingRepo, tours repo.TourRepo, logger *slog.Logger) *RatingsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RatingsService{ratings: ratings, tours: tours, logger: logger}
}

// Recalculate re-reads the complete current set of ratings for tourID,
// tallies upvotes and downvotes, and writes both counters to the tour record
// unconditionally, even when unchanged.
//
// It is invoked after a rating deletion, so the set it reads no longer
// contains the deleted record. Concurrent deletions for the same tour can
// each compute from a stale set; the final write wins, matching the
// per-document semantics of the store.
func (s *RatingsService) Recalculate(ctx context.Context, tourID string) (domain.Tour, error) {
	siblings, err := s.ratings.ListByTour(ctx, tourID)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.RatingsService.Recalculate: %w", err)
	}

	upvotes, downvotes := domain.CountVotes(siblings)

	tour, err := s.tours.SetVoteCounts(ctx, tourID, upvotes, downvotes)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.RatingsService.Recalculate: %w", err)
	}

	s.logger.InfoContext(ctx, "recalculated tour ratings",
		"tour_id", tourID,
		"upvotes", upvotes,
		"downvotes", downvotes,
	)

	return tour, nil
}
