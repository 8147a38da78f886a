package service

import (
	"errors"
	"time"

	"github.com/Monishapmj/book-review-backend/internal/models"
	"github.com/Monishapmj/book-review-backend/internal/repository"
)

// Domain errors for review flows.
var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrReviewNotFound = errors.New("no review found for this user")
)

// BookReviews is the listing payload: the book's reviews plus its title for
// display convenience.
type BookReviews struct {
	ISBN    string                   `json:"isbn"`
	Title   string                   `json:"title"`
	Reviews map[string]models.Review `json:"reviews"`
}

// ReviewService implements Reviews. It consults the book store so that a
// review can only ever be attached to an existing book.
type ReviewService struct {
	books   repository.Books
	reviews repository.Reviews
}

var _ Reviews = (*ReviewService)(nil)

func NewReviewService(books repository.Books, reviews repository.Reviews) *ReviewService {
	return &ReviewService{books: books, reviews: reviews}
}

func (s *ReviewService) ListReviews(isbn string) (BookReviews, error) {
	b, ok := s.books.Get(isbn)
	if !ok {
		return BookReviews{}, ErrBookNotFound
	}
	return BookReviews{
		ISBN:    isbn,
		Title:   b.Title,
		Reviews: s.reviews.ForBook(isbn),
	}, nil
}

// UpsertReview stores the caller's review, replacing any earlier one for the
// same book, and stamps the write time.
func (s *ReviewService) UpsertReview(isbn, username string, rating int, text string) (models.Review, error) {
	if _, ok := s.books.Get(isbn); !ok {
		return models.Review{}, ErrBookNotFound
	}
	if rating < 1 || rating > 5 {
		return models.Review{}, ErrInvalidRating
	}
	r := models.Review{
		Rating:     rating,
		Review:     text,
		ReviewedAt: time.Now().UTC(),
	}
	s.reviews.Upsert(isbn, username, r)
	return r, nil
}

func (s *ReviewService) DeleteReview(isbn, username string) error {
	if _, ok := s.books.Get(isbn); !ok {
		return ErrBookNotFound
	}
	if err := s.reviews.Delete(isbn, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}
