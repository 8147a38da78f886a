package handlers

import (
	"errors"
	"net/http"

	"github.com/Monishapmj/book-review-backend/internal/models"
	"github.com/Monishapmj/book-review-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errISBNRequired = "ISBN is required"
	errBookExists   = "Book already exists"
	errBookNotFound = "Book not found"
	errSaveBook     = "Failed to save book"

	msgBooksRetrieved = "Books retrieved successfully"
	msgBookAdded      = "Book added"
)

// @Summary      List all books
// @Tags         books
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /books [get]
func (h *Handler) getAllBooks(c *gin.Context) {
	respondDataMsg(c, http.StatusOK, h.services.ListBooks(), msgBooksRetrieved)
}

// @Summary      Get a book by ISBN
// @Tags         books
// @Produce      json
// @Param        isbn  path  string  true  "ISBN"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /books/isbn/{isbn} [get]
func (h *Handler) getBookByISBN(c *gin.Context) {
	isbn := c.Param("isbn")
	book, err := h.services.GetBook(isbn)
	if err != nil {
		respondError(c, http.StatusNotFound, errBookNotFound)
		return
	}
	respondData(c, http.StatusOK, gin.H{isbn: book})
}

// @Summary      Search books by author
// @Description  Case-insensitive substring match; an empty result is not an error.
// @Tags         books
// @Produce      json
// @Param        author  path  string  true  "Author substring"
// @Success      200  {object}  map[string]interface{}
// @Router       /books/author/{author} [get]
func (h *Handler) getBooksByAuthor(c *gin.Context) {
	respondData(c, http.StatusOK, h.services.SearchByAuthor(c.Param("author")))
}

// @Summary      Search books by title
// @Tags         books
// @Produce      json
// @Param        title  path  string  true  "Title substring"
// @Success      200  {object}  map[string]interface{}
// @Router       /books/title/{title} [get]
func (h *Handler) getBooksByTitle(c *gin.Context) {
	respondData(c, http.StatusOK, h.services.SearchByTitle(c.Param("title")))
}

// @Summary      Add a book
// @Description  The record must carry an isbn field; extra fields are stored verbatim.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        body  body  map[string]interface{}  true  "Book record"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /books [post]
func (h *Handler) addBook(c *gin.Context) {
	var book models.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		respondError(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	if err := h.services.AddBook(book); err != nil {
		switch {
		case errors.Is(err, service.ErrISBNRequired):
			respondError(c, http.StatusBadRequest, errISBNRequired)
		case errors.Is(err, service.ErrBookExists):
			respondError(c, http.StatusConflict, errBookExists)
		default:
			if h.log != nil {
				h.log.Errorw("book_add_failed", "isbn", book.ISBN, "err", err)
			}
			respondError(c, http.StatusInternalServerError, errSaveBook)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": msgBookAdded,
		"data":    gin.H{book.ISBN: book},
	})
}
