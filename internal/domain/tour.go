package domain

import "time"

// Tour represents a guided tour that users can rate.
// Upvotes and Downvotes are denormalized counters maintained by the rating
// recalculation trigger; the ratings table is the source of truth.
type Tour struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Upvotes   int       `json:"upvotes"`
	Downvotes int       `json:"downvotes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
