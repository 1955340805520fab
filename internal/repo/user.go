// Package repo contains all database access logic for the tour-guide backend.
// Each record type has its own file with an interface and a Postgres
// implementation. No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/citystroll/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepo defines the persistence operations for user records.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type UserRepo interface {
	// GetByAuthID retrieves a user by their opaque auth ID.
	// Returns domain.ErrNotFound if no such user exists.
	GetByAuthID(ctx context.Context, authID string) (domain.User, error)

	// SetCategories overwrites the user's full opt-out category set and
	// returns the updated record. Returns domain.ErrNotFound if the user
	// does not exist.
	SetCategories(ctx context.Context, authID string, categories []string) (domain.User, error)

	// SetEmailSubscribed flips the global subscription flag.
	// Returns domain.ErrNotFound if the user does not exist.
	SetEmailSubscribed(ctx context.Context, authID string, subscribed bool) error
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

// GetByAuthID retrieves a user by primary key.
func (r *pgUserRepo) GetByAuthID(ctx context.Context, authID string) (domain.User, error) {
	const q = `
		SELECT auth_id, email_subscribed, unsubscribed_categories, created_at, updated_at
		FROM users
		WHERE auth_id = @auth_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"auth_id": authID})
	result, err := scanUser(row)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByAuthID: %w", err)
	}
	return result, nil
}

// SetCategories overwrites the opt-out set and returns the updated record.
// Callers are responsible for de-duplication; this method stores whatever it
// is given.
func (r *pgUserRepo) SetCategories(ctx context.Context, authID string, categories []string) (domain.User, error) {
	const q = `
		UPDATE users
		SET unsubscribed_categories = @categories,
		    updated_at              = now()
		WHERE auth_id = @auth_id
		RETURNING auth_id, email_subscribed, unsubscribed_categories, created_at, updated_at`

	args := pgx.NamedArgs{
		"auth_id":    authID,
		"categories": categories,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanUser(row)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.SetCategories: %w", err)
	}
	return result, nil
}

// SetEmailSubscribed flips the global subscription flag.
func (r *pgUserRepo) SetEmailSubscribed(ctx context.Context, authID string, subscribed bool) error {
	const q = `
		UPDATE users
		SET email_subscribed = @subscribed,
		    updated_at       = now()
		WHERE auth_id = @auth_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"auth_id": authID, "subscribed": subscribed})
	if err != nil {
		return fmt.Errorf("repo.UserRepo.SetEmailSubscribed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.UserRepo.SetEmailSubscribed: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanUser maps a single database row into a domain.User.
func scanUser(s scanner) (domain.User, error) {
	var u domain.User

	err := s.Scan(&u.AuthID, &u.EmailSubscribed, &u.UnsubscribedCategories, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}

	return u, nil
}
