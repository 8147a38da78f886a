package models

import "time"

// Review is one user's review of one book. There is at most one per
// (isbn, username) pair; a second write replaces the first.
type Review struct {
	Rating     int       `json:"rating"` // 1..5
	Review     string    `json:"review"`
	ReviewedAt time.Time `json:"reviewedAt"`
}
