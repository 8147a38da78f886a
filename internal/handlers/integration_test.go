package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/Monishapmj/book-review-backend/internal/repository"
	"github.com/Monishapmj/book-review-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// newRealRouter wires the actual stores and services around a temp catalog file.
func newRealRouter(t *testing.T, seed string) (*gin.Engine, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.json")
	if seed != "" {
		if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
			t.Fatalf("seed catalog: %v", err)
		}
	}
	repos, err := repository.NewRepository(path)
	if err != nil {
		t.Fatalf("init repository: %v", err)
	}
	services := service.NewService(repos, "test-secret")
	return newTestRouter(services), path
}

func TestEndToEnd_Books(t *testing.T) {
	r, path := newRealRouter(t, "")

	// add
	w := doRequest(t, r, http.MethodPost, "/books", `{"isbn":"123","title":"T","author":"A"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("add: status=%d, body=%s", w.Code, w.Body.String())
	}

	// duplicate add
	w = doRequest(t, r, http.MethodPost, "/books", `{"isbn":"123","title":"T","author":"A"}`, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate add: status=%d, body=%s", w.Code, w.Body.String())
	}

	// get back
	w = doRequest(t, r, http.MethodGet, "/books/isbn/123", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: status=%d, body=%s", w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]any)
	book := data["123"].(map[string]any)
	if book["title"] != "T" || book["author"] != "A" {
		t.Fatalf("round-trip mismatch: %v", book)
	}

	// case-insensitive author search
	w = doRequest(t, r, http.MethodGet, "/books/author/a", "", nil)
	if got := len(decodeBody(t, w)["data"].(map[string]any)); got != 1 {
		t.Fatalf("author search: expected 1 match, got %d", got)
	}

	// the file was rewritten, pretty-printed
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read catalog file: %v", err)
	}
	if string(raw[:4]) != "{\n  " {
		t.Fatalf("expected pretty-printed catalog, got %q...", raw[:4])
	}
}

func TestEndToEnd_RegisterLoginReview(t *testing.T) {
	r, _ := newRealRouter(t, `{"123": {"isbn":"123","title":"T","author":"A"}}`)

	// register alice
	w := doRequest(t, r, http.MethodPost, "/users/register", `{"username":"alice","password":"pw123"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status=%d, body=%s", w.Code, w.Body.String())
	}

	// wrong password
	w = doRequest(t, r, http.MethodPost, "/users/login", `{"username":"alice","password":"wrongpw"}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: status=%d, body=%s", w.Code, w.Body.String())
	}

	// good login
	w = doRequest(t, r, http.MethodPost, "/users/login", `{"username":"alice","password":"pw123"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login: status=%d, body=%s", w.Code, w.Body.String())
	}
	token, _ := decodeBody(t, w)["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}
	authed := map[string]string{"Authorization": "Bearer " + token}

	// review with the token
	w = doRequest(t, r, http.MethodPut, "/books/123/review", `{"rating":5}`, authed)
	if w.Code != http.StatusOK {
		t.Fatalf("upsert review: status=%d, body=%s", w.Code, w.Body.String())
	}

	// listed under alice
	w = doRequest(t, r, http.MethodGet, "/books/123/reviews", "", nil)
	data := decodeBody(t, w)["data"].(map[string]any)
	revs := data["reviews"].(map[string]any)
	alice, ok := revs["alice"].(map[string]any)
	if !ok {
		t.Fatalf("expected alice's review, got %v", revs)
	}
	if int(alice["rating"].(float64)) != 5 {
		t.Fatalf("expected rating 5, got %v", alice["rating"])
	}

	// overwrite, still exactly one review
	w = doRequest(t, r, http.MethodPut, "/books/123/review", `{"rating":3,"review":"meh"}`, authed)
	if w.Code != http.StatusOK {
		t.Fatalf("second upsert: status=%d", w.Code)
	}
	w = doRequest(t, r, http.MethodGet, "/books/123/reviews", "", nil)
	revs = decodeBody(t, w)["data"].(map[string]any)["reviews"].(map[string]any)
	if len(revs) != 1 {
		t.Fatalf("expected exactly 1 review after overwrite, got %d", len(revs))
	}
	if int(revs["alice"].(map[string]any)["rating"].(float64)) != 3 {
		t.Fatalf("expected the second write to win, got %v", revs["alice"])
	}

	// delete
	w = doRequest(t, r, http.MethodDelete, "/books/123/review", "", authed)
	if w.Code != http.StatusOK {
		t.Fatalf("delete review: status=%d, body=%s", w.Code, w.Body.String())
	}

	// empty map, not a 404
	w = doRequest(t, r, http.MethodGet, "/books/123/reviews", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list after delete: status=%d", w.Code)
	}
	revs = decodeBody(t, w)["data"].(map[string]any)["reviews"].(map[string]any)
	if len(revs) != 0 {
		t.Fatalf("expected empty review map, got %v", revs)
	}

	// deleting again: no review left
	w = doRequest(t, r, http.MethodDelete, "/books/123/review", "", authed)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 deleting a missing review, got %d", w.Code)
	}

	// tampered token is forbidden
	w = doRequest(t, r, http.MethodPut, "/books/123/review", `{"rating":4}`, map[string]string{
		"Authorization": "Bearer " + token + "x",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for corrupted token, got %d", w.Code)
	}
}
