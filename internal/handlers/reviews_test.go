package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/Monishapmj/book-review-backend/internal/models"
	"github.com/Monishapmj/book-review-backend/internal/service"
)

func TestListReviews(t *testing.T) {
	reviews := &mockReviews{
		listOut: service.BookReviews{
			ISBN:  "111",
			Title: "Go in Practice",
			Reviews: map[string]models.Review{
				"alice": {Rating: 5, Review: "great", ReviewedAt: time.Now().UTC()},
			},
		},
	}
	s := &service.Service{Reviews: reviews, Authorization: &mockAuth{}, Catalog: &mockCatalog{}}
	r := newTestRouter(s)

	w := doRequest(t, r, http.MethodGet, "/books/111/reviews", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]any)
	if data["title"] != "Go in Practice" {
		t.Errorf("expected title in payload, got %v", data["title"])
	}
	revs := data["reviews"].(map[string]any)
	if _, ok := revs["alice"]; !ok {
		t.Errorf("expected alice's review, got %v", revs)
	}
}

func TestListReviews_UnknownBook(t *testing.T) {
	reviews := &mockReviews{listErr: service.ErrBookNotFound}
	s := &service.Service{Reviews: reviews, Authorization: &mockAuth{}, Catalog: &mockCatalog{}}
	r := newTestRouter(s)

	w := doRequest(t, r, http.MethodGet, "/books/999/reviews", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestUpsertReview(t *testing.T) {
	authed := map[string]string{"Authorization": "Bearer tok"}

	cases := []struct {
		name     string
		body     string
		mock     *mockReviews
		wantCode int
		wantErr  string
	}{
		{
			name: "success",
			body: `{"rating":5,"review":"excellent"}`,
			mock: &mockReviews{
				upsertOut: models.Review{Rating: 5, Review: "excellent", ReviewedAt: time.Now().UTC()},
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "unknown book",
			body:     `{"rating":5}`,
			mock:     &mockReviews{upsertErr: service.ErrBookNotFound},
			wantCode: http.StatusNotFound,
			wantErr:  "Book not found",
		},
		{
			name:     "rating out of range",
			body:     `{"rating":6}`,
			mock:     &mockReviews{upsertErr: service.ErrInvalidRating},
			wantCode: http.StatusBadRequest,
			wantErr:  "Rating must be between 1 and 5",
		},
		{
			name:     "rating absent",
			body:     `{"review":"no stars"}`,
			mock:     &mockReviews{upsertErr: service.ErrInvalidRating},
			wantCode: http.StatusBadRequest,
			wantErr:  "Rating must be between 1 and 5",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{parseOut: "alice"}
			s := &service.Service{Reviews: tc.mock, Authorization: auth, Catalog: &mockCatalog{}}
			r := newTestRouter(s)

			w := doRequest(t, r, http.MethodPut, "/books/111/review", tc.body, authed)
			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.wantCode, w.Body.String())
			}
			m := decodeBody(t, w)
			if tc.wantErr != "" {
				if m["error"] != tc.wantErr {
					t.Errorf("error: got %v, want %q", m["error"], tc.wantErr)
				}
				return
			}
			if m["message"] != "Review added/updated" {
				t.Errorf("unexpected message %v", m["message"])
			}
			if tc.mock.lastUsername != "alice" {
				t.Errorf("expected caller identity from token, got %q", tc.mock.lastUsername)
			}
		})
	}
}

func TestUpsertReview_RequiresToken(t *testing.T) {
	s := &service.Service{Reviews: &mockReviews{}, Authorization: &mockAuth{}, Catalog: &mockCatalog{}}
	r := newTestRouter(s)

	w := doRequest(t, r, http.MethodPut, "/books/111/review", `{"rating":5}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestDeleteReview(t *testing.T) {
	authed := map[string]string{"Authorization": "Bearer tok"}

	cases := []struct {
		name     string
		mock     *mockReviews
		wantCode int
		wantErr  string
	}{
		{
			name:     "success",
			mock:     &mockReviews{},
			wantCode: http.StatusOK,
		},
		{
			name:     "unknown book",
			mock:     &mockReviews{deleteErr: service.ErrBookNotFound},
			wantCode: http.StatusNotFound,
			wantErr:  "Book not found",
		},
		{
			name:     "no review by this user",
			mock:     &mockReviews{deleteErr: service.ErrReviewNotFound},
			wantCode: http.StatusNotFound,
			wantErr:  "No review found for this user",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{parseOut: "alice"}
			s := &service.Service{Reviews: tc.mock, Authorization: auth, Catalog: &mockCatalog{}}
			r := newTestRouter(s)

			w := doRequest(t, r, http.MethodDelete, "/books/111/review", "", authed)
			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.wantCode, w.Body.String())
			}
			m := decodeBody(t, w)
			if tc.wantErr != "" {
				if m["error"] != tc.wantErr {
					t.Errorf("error: got %v, want %q", m["error"], tc.wantErr)
				}
				return
			}
			if m["message"] != "Review deleted" {
				t.Errorf("unexpected message %v", m["message"])
			}
		})
	}
}
