// Demo client: exercises the read endpoints strictly sequentially, each call
// completing before the next starts.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Monishapmj/book-review-backend/internal/logger"
)

const requestTimeout = 5 * time.Second

// envelope mirrors the server's response shape for book endpoints, where
// data is a map of ISBN to record.
type envelope struct {
	Success bool                       `json:"success"`
	Data    map[string]json.RawMessage `json:"data"`
	Message string                     `json:"message"`
	Error   string                     `json:"error"`
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "server base URL")
	flag.Parse()

	log := logger.Get(logger.InfoLevel)
	client := &http.Client{Timeout: requestTimeout}

	steps := []struct {
		label string
		path  string
	}{
		{"all books", "/books"},
		{"book by ISBN 9780061120084", "/books/isbn/9780061120084"},
		{"books by author \"Harper Lee\"", "/books/author/" + url.PathEscape("Harper Lee")},
		{"books by title \"1984\"", "/books/title/1984"},
	}

	for _, step := range steps {
		env, err := fetch(client, *baseURL+step.path)
		if err != nil {
			log.Fatalw("request failed", "step", step.label, "err", err)
		}
		log.Infow("step done",
			"step", step.label,
			"count", len(env.Data),
			"sample", sampleTitle(env.Data),
		)
	}

	log.Infow("all operations completed")
}

func fetch(client *http.Client, rawURL string) (envelope, error) {
	resp, err := client.Get(rawURL)
	if err != nil {
		return envelope{}, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return envelope{}, fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		return envelope{}, fmt.Errorf("server error (%d): %s", resp.StatusCode, env.Error)
	}
	return env, nil
}

// sampleTitle picks the title of any one record in the result, for display.
func sampleTitle(data map[string]json.RawMessage) string {
	for _, raw := range data {
		var book struct {
			Title string `json:"title"`
		}
		if err := json.Unmarshal(raw, &book); err == nil && book.Title != "" {
			return book.Title
		}
	}
	return "N/A"
}
