package service

import (
	"errors"
	"fmt"

	"github.com/Monishapmj/book-review-backend/internal/models"
	"github.com/Monishapmj/book-review-backend/internal/repository"
)

// Domain errors for catalog flows.
var (
	ErrISBNRequired = errors.New("isbn is required")
	ErrBookExists   = errors.New("book already exists")
	ErrBookNotFound = errors.New("book not found")
)

// CatalogService implements Catalog on top of the book store.
type CatalogService struct {
	books repository.Books
}

var _ Catalog = (*CatalogService)(nil)

func NewCatalogService(books repository.Books) *CatalogService {
	return &CatalogService{books: books}
}

func (s *CatalogService) ListBooks() map[string]models.Book {
	return s.books.All()
}

func (s *CatalogService) GetBook(isbn string) (models.Book, error) {
	b, ok := s.books.Get(isbn)
	if !ok {
		return models.Book{}, ErrBookNotFound
	}
	return b, nil
}

func (s *CatalogService) SearchByAuthor(query string) map[string]models.Book {
	return s.books.SearchByAuthor(query)
}

func (s *CatalogService) SearchByTitle(query string) map[string]models.Book {
	return s.books.SearchByTitle(query)
}

// AddBook validates and inserts. A persistence failure surfaces as a wrapped
// error and leaves the in-memory insert in place (no rollback).
func (s *CatalogService) AddBook(b models.Book) error {
	if b.ISBN == "" {
		return ErrISBNRequired
	}
	if err := s.books.Add(b); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return ErrBookExists
		}
		return fmt.Errorf("add book %q: %w", b.ISBN, err)
	}
	return nil
}

func (s *CatalogService) BookCount() int {
	return s.books.Count()
}
