// Package normalize turns raw WordPress posts into display-ready news items.
package normalize

import (
	"strconv"
	"time"

	"github.com/ugmineras/noticias/internal/models"
)

// UntitledTitle replaces titles that are empty after sanitizing
const UntitledTitle = "Sin título"

// Normalizer applies the full pipeline to raw posts. It holds no per-call
// state and is safe for concurrent use.
type Normalizer struct {
	dates *DateFormatter
}

type Option func(*Normalizer)

// WithLocation sets the time zone used to display dates.
func WithLocation(loc *time.Location) Option {
	return func(n *Normalizer) {
		n.dates = NewDateFormatter(loc)
	}
}

func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		dates: NewDateFormatter(time.UTC),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Dates exposes the formatter so callers can parse timestamps consistently.
func (n *Normalizer) Dates() *DateFormatter {
	return n.dates
}

// Normalize converts one raw post. It never fails; missing fields fall back
// to their defaults.
func (n *Normalizer) Normalize(raw models.RawPost, categoryKey string) models.NewsItem {
	content := Sanitize(raw.Content)

	title := Sanitize(raw.Title)
	if title == "" {
		title = UntitledTitle
	}

	return models.NewsItem{
		ID:            postID(raw),
		Title:         title,
		Subtitle:      BuildExcerpt(raw.Excerpt, content),
		Image:         ResolveImage(raw, content),
		CategoryKey:   categoryKey,
		CategoryName:  DisplayName(categoryKey),
		CategoryLabel: ShortLabel(categoryKey),
		CategoryColor: ColorToken(categoryKey),
		Content:       content,
		Source:        ExtractSource(content),
		Date:          n.dates.Format(raw.Date),
		OriginalDate:  raw.Date,
	}
}

// NormalizeAll maps Normalize over posts, preserving order. An empty input
// yields an empty, non-nil slice.
func (n *Normalizer) NormalizeAll(posts []models.RawPost, categoryKey string) []models.NewsItem {
	items := make([]models.NewsItem, 0, len(posts))
	for _, post := range posts {
		items = append(items, n.Normalize(post, categoryKey))
	}
	return items
}

func postID(raw models.RawPost) string {
	if raw.Slug != "" {
		return raw.Slug
	}
	return strconv.FormatInt(raw.ID, 10)
}
