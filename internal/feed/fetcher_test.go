package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ugmineras/noticias/internal/config"
)

const postsJSON = `[
	{
		"id": 1,
		"slug": "paro-minero",
		"date": "2024-03-05T10:00:00",
		"title": {"rendered": "Paro minero"},
		"content": {"rendered": "<p>Texto</p>"},
		"excerpt": {"rendered": ""},
		"featured_media": 3,
		"_embedded": {"wp:featuredmedia": [{"source_url": "http://x.com/f.jpg"}]}
	},
	{
		"id": 2,
		"slug": "nueva-ley",
		"date": "2024-03-04T10:00:00",
		"title": {"rendered": "Nueva ley"},
		"content": {"rendered": ""},
		"excerpt": {"rendered": ""},
		"featured_media": 0
	}
]`

func newTestFetcher(t *testing.T, handler http.HandlerFunc) *Fetcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	f := NewFetcher(&config.Config{
		WordPressAPIURL:    srv.URL + "/",
		WordPressUserAgent: "noticias-test",
		HTTPTimeout:        5 * time.Second,
	})
	f.client.SetRetryCount(0)
	return f
}

func TestFetchCategory(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/posts" {
			t.Errorf("Expected /posts, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		for param, want := range map[string]string{
			"categories": "67720",
			"per_page":   "20",
			"orderby":    "date",
			"order":      "desc",
			"_embed":     "1",
		} {
			if got := q.Get(param); got != want {
				t.Errorf("Expected %s=%s, got %q", param, want, got)
			}
		}
		if ua := r.Header.Get("User-Agent"); ua != "noticias-test" {
			t.Errorf("Expected user agent header, got %q", ua)
		}
		if accept := r.Header.Get("Accept"); accept != "application/json" {
			t.Errorf("Expected JSON accept header, got %q", accept)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(postsJSON))
	})

	posts, err := f.FetchCategory(context.Background(), 67720, 20)
	if err != nil {
		t.Fatalf("FetchCategory failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("Expected 2 posts, got %d", len(posts))
	}
	if posts[0].Slug != "paro-minero" || posts[0].FeaturedMediaURL != "http://x.com/f.jpg" {
		t.Errorf("Unexpected first post: %+v", posts[0])
	}
	if posts[1].HasFeaturedMedia() {
		t.Errorf("Expected second post without featured media")
	}
}

func TestFetchBySlug(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("slug"); got != "paro-minero" {
			t.Errorf("Expected slug query, got %q", got)
		}
		w.Write([]byte(`[]`))
	})

	posts, err := f.FetchBySlug(context.Background(), "paro-minero")
	if err != nil {
		t.Fatalf("FetchBySlug failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("Expected no posts, got %d", len(posts))
	}
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"code":"rest_no_route"}`))
		}},
		{"malformed json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not": "a list"`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFetcher(t, tt.handler)
			if _, err := f.FetchCategory(context.Background(), 1, 10); err == nil {
				t.Errorf("Expected error")
			}
		})
	}
}
