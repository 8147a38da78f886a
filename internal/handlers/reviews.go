package handlers

import (
	"errors"
	"net/http"

	"github.com/Monishapmj/book-review-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errInvalidRating  = "Rating must be between 1 and 5"
	errReviewNotFound = "No review found for this user"

	msgReviewUpserted = "Review added/updated"
	msgReviewDeleted  = "Review deleted"
)

// Request DTO for upserting a review. Rating validation happens in the
// service so an absent rating falls through to the same range check.
type reviewRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// @Summary      List reviews for a book
// @Tags         reviews
// @Produce      json
// @Param        isbn  path  string  true  "ISBN"
// @Success      200  {object}  map[string]interface{}  "isbn, title, reviews"
// @Failure      404  {object}  map[string]interface{}
// @Router       /books/{isbn}/reviews [get]
func (h *Handler) listReviews(c *gin.Context) {
	out, err := h.services.ListReviews(c.Param("isbn"))
	if err != nil {
		respondError(c, http.StatusNotFound, errBookNotFound)
		return
	}
	respondData(c, http.StatusOK, out)
}

// @Summary      Add or update the caller's review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        isbn  path  string         true  "ISBN"
// @Param        body  body  reviewRequest  true  "Review payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /books/{isbn}/review [put]
// @Security     BearerAuth
func (h *Handler) upsertReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	stored, err := h.services.UpsertReview(c.Param("isbn"), c.GetString(ctxUsername), req.Rating, req.Review)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			respondError(c, http.StatusNotFound, errBookNotFound)
		case errors.Is(err, service.ErrInvalidRating):
			respondError(c, http.StatusBadRequest, errInvalidRating)
		default:
			respondError(c, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}
	respondDataMsg(c, http.StatusOK, stored, msgReviewUpserted)
}

// @Summary      Delete the caller's review
// @Tags         reviews
// @Produce      json
// @Param        isbn  path  string  true  "ISBN"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /books/{isbn}/review [delete]
// @Security     BearerAuth
func (h *Handler) deleteReview(c *gin.Context) {
	err := h.services.DeleteReview(c.Param("isbn"), c.GetString(ctxUsername))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			respondError(c, http.StatusNotFound, errBookNotFound)
		case errors.Is(err, service.ErrReviewNotFound):
			respondError(c, http.StatusNotFound, errReviewNotFound)
		default:
			respondError(c, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}
	respondMsg(c, http.StatusOK, msgReviewDeleted)
}
