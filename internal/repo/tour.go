package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/citystroll/backend/internal/domain"
)

// TourRepo defines the persistence operations for tour records.
type TourRepo interface {
	// GetByID retrieves a single tour by its opaque ID.
	// Returns domain.ErrNotFound if no tour with that ID exists.
	GetByID(ctx context.Context, id string) (domain.Tour, error)

	// SetVoteCounts writes both denormalized counters unconditionally and
	// returns the updated record, even when the values are unchanged.
	// Returns domain.ErrNotFound if the tour does not exist.
	SetVoteCounts(ctx context.Context, id string, upvotes, downvotes int) (domain.Tour, error)
}

// pgTourRepo is the Postgres implementation of TourRepo.
type pgTourRepo struct {
	db db
}

// NewTourRepo constructs a TourRepo backed by the provided db connection.
func NewTourRepo(db db) TourRepo {
	return &pgTourRepo{db: db}
}

// GetByID retrieves a tour by primary key.
func (r *pgTourRepo) GetByID(ctx context.Context, id string) (domain.Tour, error) {
	const q = `
		SELECT id, name, upvotes, downvotes, created_at, updated_at
		FROM tours
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTour(row)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("repo.TourRepo.GetByID: %w", err)
	}
	return result, nil
}

// SetVoteCounts overwrites both counters and returns the updated record.
func (r *pgTourRepo) SetVoteCounts(ctx context.Context, id string, upvotes, downvotes int) (domain.Tour, error) {
	const q = `
		UPDATE tours
		SET upvotes    = @upvotes,
		    downvotes  = @downvotes,
		    updated_at = now()
		WHERE id = @id
		RETURNING id, name, upvotes, downvotes, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":        id,
		"upvotes":   upvotes,
		"downvotes": downvotes,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTour(row)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("repo.TourRepo.SetVoteCounts: %w", err)
	}
	return result, nil
}

// scanTour maps a single database row into a domain.Tour.
func scanTour(s scanner) (domain.Tour, error) {
	var t domain.Tour

	err := s.Scan(&t.ID, &t.Name, &t.Upvotes, &t.Downvotes, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Tour{}, domain.ErrNotFound
		}
		return domain.Tour{}, err
	}

	return t, nil
}
