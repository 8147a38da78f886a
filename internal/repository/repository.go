package repository

import (
	"errors"

	"github.com/Monishapmj/book-review-backend/internal/models"
)

// Store-level sentinels. Services translate these into their own domain errors.
var (
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
)

// Books is the catalog store: an in-memory map seeded from a JSON file and
// rewritten to it on every successful Add.
type Books interface {
	All() map[string]models.Book
	Get(isbn string) (models.Book, bool)
	SearchByAuthor(query string) map[string]models.Book
	SearchByTitle(query string) map[string]models.Book
	Add(b models.Book) error
	Count() int
}

// Reviews is the volatile review store: (isbn, username) -> review.
// Never persisted; empties on restart.
type Reviews interface {
	ForBook(isbn string) map[string]models.Review
	Upsert(isbn, username string, r models.Review)
	Delete(isbn, username string) error
}

// Users is the volatile account store keyed by username.
type Users interface {
	Create(u models.User) error
	GetByUsername(username string) (*models.User, error)
	Count() int
}

type Repository struct {
	Books   Books
	Reviews Reviews
	Users   Users
}

// NewRepository wires the three stores, loading the catalog from booksPath.
func NewRepository(booksPath string) (*Repository, error) {
	books, err := NewBookStore(booksPath)
	if err != nil {
		return nil, err
	}
	return &Repository{
		Books:   books,
		Reviews: NewReviewStore(),
		Users:   NewUserStore(),
	}, nil
}
