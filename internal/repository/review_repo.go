package repository

import (
	"sync"

	"github.com/Monishapmj/book-review-backend/internal/models"
)

// ReviewStore is a two-level in-memory map: isbn -> username -> review.
// Nothing here survives a restart.
type ReviewStore struct {
	mu      sync.RWMutex
	reviews map[string]map[string]models.Review
}

var _ Reviews = (*ReviewStore)(nil)

func NewReviewStore() *ReviewStore {
	return &ReviewStore{reviews: map[string]map[string]models.Review{}}
}

// ForBook returns a copy of the per-user review map for a book. Books with no
// reviews yield an empty map.
func (s *ReviewStore) ForBook(isbn string) map[string]models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.Review, len(s.reviews[isbn]))
	for user, r := range s.reviews[isbn] {
		out[user] = r
	}
	return out
}

// Upsert stores the review, replacing any prior one by the same user.
func (s *ReviewStore) Upsert(isbn, username string, r models.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reviews[isbn] == nil {
		s.reviews[isbn] = map[string]models.Review{}
	}
	s.reviews[isbn][username] = r
}

// Delete removes the user's review; the per-book map goes away with its last
// entry so the store doesn't accumulate empty inner maps.
func (s *ReviewStore) Delete(isbn, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byUser, ok := s.reviews[isbn]
	if !ok {
		return ErrNotFound
	}
	if _, ok := byUser[username]; !ok {
		return ErrNotFound
	}
	delete(byUser, username)
	if len(byUser) == 0 {
		delete(s.reviews, isbn)
	}
	return nil
}
