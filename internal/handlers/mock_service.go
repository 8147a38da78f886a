package handlers

import (
	"github.com/Monishapmj/book-review-backend/internal/models"
	"github.com/Monishapmj/book-review-backend/internal/service"
)

// ---- Service mocks for handler tests ----

type mockCatalog struct {
	books     map[string]models.Book
	addErr    error
	lastAdded models.Book
	addCalls  int
}

func (m *mockCatalog) ListBooks() map[string]models.Book {
	return m.books
}

func (m *mockCatalog) GetBook(isbn string) (models.Book, error) {
	b, ok := m.books[isbn]
	if !ok {
		return models.Book{}, service.ErrBookNotFound
	}
	return b, nil
}

func (m *mockCatalog) SearchByAuthor(query string) map[string]models.Book {
	return m.books
}

func (m *mockCatalog) SearchByTitle(query string) map[string]models.Book {
	return m.books
}

func (m *mockCatalog) AddBook(b models.Book) error {
	m.addCalls++
	m.lastAdded = b
	return m.addErr
}

func (m *mockCatalog) BookCount() int { return len(m.books) }

type mockReviews struct {
	listOut   service.BookReviews
	listErr   error
	upsertOut models.Review
	upsertErr error
	deleteErr error

	lastISBN     string
	lastUsername string
	lastRating   int
	lastText     string
}

func (m *mockReviews) ListReviews(isbn string) (service.BookReviews, error) {
	m.lastISBN = isbn
	return m.listOut, m.listErr
}

func (m *mockReviews) UpsertReview(isbn, username string, rating int, text string) (models.Review, error) {
	m.lastISBN = isbn
	m.lastUsername = username
	m.lastRating = rating
	m.lastText = text
	return m.upsertOut, m.upsertErr
}

func (m *mockReviews) DeleteReview(isbn, username string) error {
	m.lastISBN = isbn
	m.lastUsername = username
	return m.deleteErr
}

type mockAuth struct {
	registerOut models.User
	registerErr error
	token       string
	tokenErr    error
	parseOut    string
	parseErr    error
	userCount   int

	lastParseToken   string
	lastRegisterUser string
	lastLoginUser    string
}

func (m *mockAuth) Register(username, password, email string) (models.User, error) {
	m.lastRegisterUser = username
	return m.registerOut, m.registerErr
}

func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastLoginUser = username
	return m.token, m.tokenErr
}

func (m *mockAuth) ParseToken(accessToken string) (string, error) {
	m.lastParseToken = accessToken
	return m.parseOut, m.parseErr
}

func (m *mockAuth) UserCount() int { return m.userCount }
