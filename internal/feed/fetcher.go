package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/ugmineras/noticias/internal/config"
	"github.com/ugmineras/noticias/internal/models"
)

// Fetcher reads posts from the WordPress REST API
type Fetcher struct {
	client *resty.Client
}

var _ PostSource = (*Fetcher)(nil)

func NewFetcher(cfg *config.Config) *Fetcher {
	return &Fetcher{
		client: resty.New().
			SetBaseURL(strings.TrimRight(cfg.WordPressAPIURL, "/")).
			SetTimeout(cfg.HTTPTimeout).
			SetRetryCount(3).
			SetRetryWaitTime(2*time.Second).
			SetRetryMaxWaitTime(10*time.Second).
			SetHeader("User-Agent", cfg.WordPressUserAgent).
			SetHeader("Accept", "application/json"),
	}
}

// FetchCategory retrieves the newest posts of a category with embedded media
func (f *Fetcher) FetchCategory(ctx context.Context, categoryID, perPage int) ([]models.RawPost, error) {
	return f.getPosts(ctx, map[string]string{
		"categories": strconv.Itoa(categoryID),
		"per_page":   strconv.Itoa(perPage),
		"orderby":    "date",
		"order":      "desc",
		"_embed":     "1",
	})
}

// FetchBySlug retrieves the posts matching slug, normally zero or one
func (f *Fetcher) FetchBySlug(ctx context.Context, slug string) ([]models.RawPost, error) {
	return f.getPosts(ctx, map[string]string{
		"slug":   slug,
		"_embed": "1",
	})
}

func (f *Fetcher) getPosts(ctx context.Context, params map[string]string) ([]models.RawPost, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/posts")

	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode(), resp.Request.URL)
	}

	var posts []models.RawPost
	if err := json.Unmarshal(resp.Body(), &posts); err != nil {
		return nil, fmt.Errorf("failed to parse posts response: %w", err)
	}

	return posts, nil
}
