package feed

import (
	"context"
	"errors"

	"github.com/ugmineras/noticias/internal/models"
)

var (
	// ErrUnknownCategory is returned for category keys without a WordPress id
	ErrUnknownCategory = errors.New("unknown category")
	// ErrNotFound is returned when no post matches the requested slug
	ErrNotFound = errors.New("news item not found")
)

// PostSource retrieves raw posts from the CMS
type PostSource interface {
	FetchCategory(ctx context.Context, categoryID, perPage int) ([]models.RawPost, error)
	FetchBySlug(ctx context.Context, slug string) ([]models.RawPost, error)
}
