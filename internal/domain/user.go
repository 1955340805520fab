// Package domain contains the core data types for the tour-guide backend.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// MaxAuthIDLength is the exclusive upper bound on auth ID length.
// Auth IDs are opaque identity strings used as the user record key;
// valid IDs are 1 to 49 characters.
const MaxAuthIDLength = 50

// User represents an app user reachable by outbound email.
// Users are keyed by AuthID, the opaque identity string embedded in
// unsubscribe links. This system never creates or deletes user records;
// it only flips subscription state.
type User struct {
	AuthID          string `json:"auth_id"`
	EmailSubscribed bool   `json:"email_subscribed"`

	// UnsubscribedCategories is the set of email categories the user has
	// opted out of. Order is irrelevant and entries are unique.
	UnsubscribedCategories []string `json:"unsubscribed_categories"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasOptedOut reports whether the user has already unsubscribed from category.
func (u User) HasOptedOut(category string) bool {
	for _, c := range u.UnsubscribedCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ValidAuthID reports whether s is an acceptable auth ID: non-empty and
// shorter than MaxAuthIDLength characters.
func ValidAuthID(s string) bool {
	return len(s) > 0 && len(s) < MaxAuthIDLength
}
