package domain

import "time"

// Rating values as stored on a rating record.
// Anything outside these two values is tolerated on read and ignored by the
// vote recalculation.
const (
	Upvote   = 1
	Downvote = -1
)

// Rating is a single user vote on a tour. Ratings are created and deleted by
// the mobile clients, not by this backend; this backend only reads them and
// reacts to deletions.
type Rating struct {
	ID        string    `json:"id"`
	TourID    string    `json:"tour_id"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// CountVotes tallies upvotes and downvotes across a set of sibling ratings.
// Values outside {Upvote, Downvote} contribute to neither counter.
func CountVotes(ratings []Rating) (upvotes, downvotes int) {
	for _, r := range ratings {
		switch r.Value {
		case Upvote:
			upvotes++
		case Downvote:
			downvotes++
		}
	}
	return upvotes, downvotes
}
