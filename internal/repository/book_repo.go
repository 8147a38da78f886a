package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/Monishapmj/book-review-backend/internal/models"
)

// BookStore keeps the whole catalog in memory and mirrors it to a JSON file.
// The file is read once at construction and rewritten wholesale, pretty-printed,
// on every successful Add.
type BookStore struct {
	mu    sync.RWMutex
	path  string
	books map[string]models.Book
}

var _ Books = (*BookStore)(nil)

// NewBookStore loads the catalog from path. A missing file is not an error;
// the store simply starts empty.
func NewBookStore(path string) (*BookStore, error) {
	s := &BookStore{path: path, books: map[string]models.Book{}}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog %q: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.books); err != nil {
		return nil, fmt.Errorf("parse catalog %q: %w", path, err)
	}
	return s, nil
}

// All returns a copy of the full catalog.
func (s *BookStore) All() map[string]models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyBooks(s.books, func(models.Book) bool { return true })
}

// Get looks up a single book by exact ISBN.
func (s *BookStore) Get(isbn string) (models.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.books[isbn]
	return b, ok
}

// SearchByAuthor returns every book whose author contains query,
// case-insensitively. An empty result is an empty map, not nil.
func (s *BookStore) SearchByAuthor(query string) map[string]models.Book {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyBooks(s.books, func(b models.Book) bool {
		return strings.Contains(strings.ToLower(b.Author), q)
	})
}

// SearchByTitle is SearchByAuthor against the title field.
func (s *BookStore) SearchByTitle(query string) map[string]models.Book {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyBooks(s.books, func(b models.Book) bool {
		return strings.Contains(strings.ToLower(b.Title), q)
	})
}

// Add inserts a new book and rewrites the backing file. When the file write
// fails the insert is NOT rolled back: memory and disk diverge until the next
// successful write. That mirrors the API's observed failure contract.
func (s *BookStore) Add(b models.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[b.ISBN]; ok {
		return ErrAlreadyExists
	}
	s.books[b.ISBN] = b

	if err := s.persistLocked(); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}
	return nil
}

func (s *BookStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}

// persistLocked writes the full catalog, pretty-printed. Callers hold mu.
func (s *BookStore) persistLocked() error {
	data, err := json.MarshalIndent(s.books, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func copyBooks(src map[string]models.Book, keep func(models.Book) bool) map[string]models.Book {
	out := make(map[string]models.Book, len(src))
	for isbn, b := range src {
		if keep(b) {
			out[isbn] = b
		}
	}
	return out
}
