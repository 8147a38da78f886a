package service

import (
	"github.com/Monishapmj/book-review-backend/internal/models"
	"github.com/Monishapmj/book-review-backend/internal/repository"
)

// Catalog exposes book lookups and insertion.
type Catalog interface {
	ListBooks() map[string]models.Book
	GetBook(isbn string) (models.Book, error)
	SearchByAuthor(query string) map[string]models.Book
	SearchByTitle(query string) map[string]models.Book
	AddBook(b models.Book) error
	BookCount() int
}

// Reviews exposes per-book review listing and the authenticated
// upsert/delete operations.
type Reviews interface {
	ListReviews(isbn string) (BookReviews, error)
	UpsertReview(isbn, username string, rating int, text string) (models.Review, error)
	DeleteReview(isbn, username string) error
}

// Authorization handles registration, credential checks and bearer tokens.
type Authorization interface {
	Register(username, password, email string) (models.User, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (string, error)
	UserCount() int
}

// Service aggregates all sub-services.
type Service struct {
	Catalog
	Reviews
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, signingKey string) *Service {
	return &Service{
		Catalog:       NewCatalogService(repos.Books),
		Reviews:       NewReviewService(repos.Books, repos.Reviews),
		Authorization: NewAuthService(repos.Users, signingKey),
	}
}
