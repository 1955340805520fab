package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/citystroll/backend/internal/domain"
)

// RatingRepo defines the persistence operations for rating records.
// Ratings are written by the mobile clients; this backend only reads them,
// so the interface is read-only.
type RatingRepo interface {
	// ListByTour returns every rating currently attached to the given tour.
	// A tour with no ratings yields an empty slice, not an error.
	ListByTour(ctx context.Context, tourID string) ([]domain.Rating, error)
}

// pgRatingRepo is the Postgres implementation of RatingRepo.
type pgRatingRepo struct {
	db db
}

// NewRatingRepo constructs a RatingRepo backed by the provided db connection.
func NewRatingRepo(db db) RatingRepo {
	return &pgRatingRepo{db: db}
}

// ListByTour performs a full scan of a tour's ratings.
// The recalculation trigger relies on this being the complete post-deletion
// sibling set, so no filtering on value happens here.
func (r *pgRatingRepo) ListByTour(ctx context.Context, tourID string) ([]domain.Rating, error) {
	const q = `
		SELECT id, tour_id, value, created_at
		FROM ratings
		WHERE tour_id = @tour_id
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"tour_id": tourID})
	if err != nil {
		return nil, fmt.Errorf("repo.RatingRepo.ListByTour: %w", err)
	}
	defer rows.Close()

	ratings := []domain.Rating{}
	for rows.Next() {
		var rating domain.Rating
		if err := rows.Scan(&rating.ID, &rating.TourID, &rating.Value, &rating.CreatedAt); err != nil {
			return nil, fmt.Errorf("repo.RatingRepo.ListByTour: scan: %w", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RatingRepo.ListByTour: rows: %w", err)
	}

	return ratings, nil
}
