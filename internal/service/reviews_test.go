package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Monishapmj/book-review-backend/internal/models"
	"github.com/Monishapmj/book-review-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewFixture(t *testing.T) *ReviewService {
	t.Helper()
	books, err := repository.NewBookStore(filepath.Join(t.TempDir(), "books.json"))
	require.NoError(t, err)
	require.NoError(t, books.Add(models.Book{ISBN: "123", Title: "T", Author: "A"}))
	return NewReviewService(books, repository.NewReviewStore())
}

func TestReviewService_Upsert(t *testing.T) {
	svc := newReviewFixture(t)

	before := time.Now().UTC()
	r, err := svc.UpsertReview("123", "alice", 5, "great")
	require.NoError(t, err)

	assert.Equal(t, 5, r.Rating)
	assert.Equal(t, "great", r.Review)
	assert.False(t, r.ReviewedAt.Before(before))

	// second write for the same (isbn, user) replaces the first
	r, err = svc.UpsertReview("123", "alice", 2, "rereading changed my mind")
	require.NoError(t, err)
	assert.Equal(t, 2, r.Rating)

	out, err := svc.ListReviews("123")
	require.NoError(t, err)
	require.Len(t, out.Reviews, 1)
	assert.Equal(t, 2, out.Reviews["alice"].Rating)
}

func TestReviewService_UpsertValidation(t *testing.T) {
	svc := newReviewFixture(t)

	_, err := svc.UpsertReview("999", "alice", 5, "")
	assert.ErrorIs(t, err, ErrBookNotFound)

	for _, rating := range []int{0, -1, 6} {
		_, err = svc.UpsertReview("123", "alice", rating, "")
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}

	// review text is optional
	_, err = svc.UpsertReview("123", "alice", 1, "")
	assert.NoError(t, err)
}

func TestReviewService_List(t *testing.T) {
	svc := newReviewFixture(t)

	out, err := svc.ListReviews("123")
	require.NoError(t, err)
	assert.Equal(t, "123", out.ISBN)
	assert.Equal(t, "T", out.Title)
	assert.NotNil(t, out.Reviews)
	assert.Empty(t, out.Reviews)

	_, err = svc.ListReviews("999")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestReviewService_Delete(t *testing.T) {
	svc := newReviewFixture(t)

	assert.ErrorIs(t, svc.DeleteReview("999", "alice"), ErrBookNotFound)
	assert.ErrorIs(t, svc.DeleteReview("123", "alice"), ErrReviewNotFound)

	_, err := svc.UpsertReview("123", "alice", 4, "")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteReview("123", "alice"))

	// listing after deleting the last review yields an empty map, not an error
	out, err := svc.ListReviews("123")
	require.NoError(t, err)
	assert.Empty(t, out.Reviews)
}
