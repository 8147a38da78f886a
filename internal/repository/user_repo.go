package repository

import (
	"sync"

	"github.com/Monishapmj/book-review-backend/internal/models"
)

// UserStore is the volatile account map keyed by username.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

var _ Users = (*UserStore)(nil)

func NewUserStore() *UserStore {
	return &UserStore{users: map[string]models.User{}}
}

// Create stores a new user. Usernames are unique.
func (s *UserStore) Create(u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.Username]; ok {
		return ErrAlreadyExists
	}
	s.users[u.Username] = u
	return nil
}

// GetByUsername fetches a user. Returns (nil, nil) if absent.
func (s *UserStore) GetByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
