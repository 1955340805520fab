// Package service contains the business logic for the tour-guide backend.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"

	"github.com/citystroll/backend/internal/domain"
	"github.com/citystroll/backend/internal/repo"
)

// UnsubscribeService implements the email opt-out flow triggered by the
// unsubscribe link embedded in outbound mail.
type UnsubscribeService struct {
	users repo.UserRepo
}

// NewUnsubscribeService constructs an UnsubscribeService backed by the
// provided UserRepo.
func NewUnsubscribeService(users repo.UserRepo) *UnsubscribeService {
	return &UnsubscribeService{users: users}
}

// Unsubscribe adds category to the user's opt-out set and returns the updated
// record. Calling it again with the same category is a no-op, so repeated
// clicks on the same link converge on the same state.
//
// The append is a read-modify-write, not a single atomic update: two
// concurrent calls for the same user can each read the old set and one write
// can be lost. Known limitation — unsubscribe links are clicked by one human
// at a time, so the race is accepted rather than fixed.
func (s *UnsubscribeService) Unsubscribe(ctx context.Context, authID, category string) (domain.User, error) {
	if !domain.ValidAuthID(authID) {
		return domain.User{}, fmt.Errorf("service.UnsubscribeService.Unsubscribe: %w: auth ID must be 1-%d characters",
			domain.ErrValidation, domain.MaxAuthIDLength-1)
	}
	if category == "" {
		return domain.User{}, fmt.Errorf("service.UnsubscribeService.Unsubscribe: %w: email category is required",
			domain.ErrValidation)
	}

	user, err := s.users.GetByAuthID(ctx, authID)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UnsubscribeService.Unsubscribe: %w", err)
	}

	if user.HasOptedOut(category) {
		// Already unsubscribed from this category; skip the write entirely.
		return user, nil
	}

	updated, err := s.users.SetCategories(ctx, authID, append(user.UnsubscribedCategories, category))
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UnsubscribeService.Unsubscribe: %w", err)
	}
	return updated, nil
}

// UnsubscribeAll flips the user's global subscription flag off without
// touching the per-category set. This is the original blind-update behavior
// that the category-aware flow superseded; it is kept for records that
// predate categories but is no longer routed over HTTP.
func (s *UnsubscribeService) UnsubscribeAll(ctx context.Context, authID string) error {
	if !domain.ValidAuthID(authID) {
		return fmt.Errorf("service.UnsubscribeService.UnsubscribeAll: %w: auth ID must be 1-%d characters",
			domain.ErrValidation, domain.MaxAuthIDLength-1)
	}

	if err := s.users.SetEmailSubscribed(ctx, authID, false); err != nil {
		return fmt.Errorf("service.UnsubscribeService.UnsubscribeAll: %w", err)
	}
	return nil
}
