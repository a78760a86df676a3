package feed

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ugmineras/noticias/internal/cache"
	"github.com/ugmineras/noticias/internal/config"
	"github.com/ugmineras/noticias/internal/logger"
	"github.com/ugmineras/noticias/internal/models"
	"github.com/ugmineras/noticias/internal/normalize"
	"github.com/ugmineras/noticias/internal/storage"
	"github.com/ugmineras/noticias/internal/utils"
)

// Options controls page sizes and caching
type Options struct {
	CategoryIDs     map[string]int
	HomePerPage     int
	CategoryPerPage int
	RelatedPerPage  int
	CacheTTL        time.Duration
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		CategoryIDs:     cfg.CategoryIDs,
		HomePerPage:     cfg.HomePerPage,
		CategoryPerPage: cfg.CategoryPerPage,
		RelatedPerPage:  cfg.RelatedPerPage,
		CacheTTL:        cfg.CacheTTL,
	}
}

// Processor fetches raw posts, normalizes them and caches the results
type Processor struct {
	source     PostSource
	normalizer *normalize.Normalizer
	cache      cache.Store
	archive    storage.Archive
	opts       Options
	now        func() time.Time
}

func NewProcessor(source PostSource, normalizer *normalize.Normalizer, store cache.Store, archive storage.Archive, opts Options) *Processor {
	return &Processor{
		source:     source,
		normalizer: normalizer,
		cache:      store,
		archive:    archive,
		opts:       opts,
		now:        time.Now,
	}
}

// Keys returns the configured categories, known ones first in registry order
func (p *Processor) Keys() []string {
	keys := make([]string, 0, len(p.opts.CategoryIDs))
	for _, key := range normalize.Keys {
		if _, ok := p.opts.CategoryIDs[key]; ok {
			keys = append(keys, key)
		}
	}

	var extra []string
	for key := range p.opts.CategoryIDs {
		if !normalize.Known(key) {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

// Category returns up to limit normalized items of a category, newest
// first. A limit of zero uses the configured page size.
func (p *Processor) Category(ctx context.Context, key string, limit int) ([]models.NewsItem, error) {
	if _, ok := p.opts.CategoryIDs[key]; !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrUnknownCategory)
	}
	if limit <= 0 {
		limit = p.opts.CategoryPerPage
	}
	return p.listCategory(ctx, key, limit), nil
}

// listCategory never fails: fetch errors degrade to an empty list
func (p *Processor) listCategory(ctx context.Context, key string, perPage int) []models.NewsItem {
	log := logger.Component("feed")
	cacheKey := fmt.Sprintf("category:%s:%d", key, perPage)

	var items []models.NewsItem
	found, err := p.cache.GetJSON(ctx, cacheKey, &items)
	if err != nil {
		log.Warn().Err(err).Str("category", key).Msg("Error reading category cache")
	}
	if found {
		log.Debug().Str("category", key).Int("count", len(items)).Msg("Category served from cache")
		return items
	}

	start := time.Now()
	posts, err := p.source.FetchCategory(ctx, p.opts.CategoryIDs[key], perPage)
	if err != nil {
		log.Warn().
			Err(err).
			Str("category", key).
			Msg("Error fetching category, returning empty list")
		return []models.NewsItem{}
	}

	items = p.normalizer.NormalizeAll(posts, key)
	log.Info().
		Str("category", key).
		Int("count", len(items)).
		Dur("duration", time.Since(start)).
		Msg("Fetched and normalized category")

	if len(items) > 0 {
		if err := p.cache.SetJSON(ctx, cacheKey, items, p.opts.CacheTTL); err != nil {
			log.Warn().Err(err).Str("category", key).Msg("Error caching category")
		}
	}
	return items
}

// FrontPage fetches every category concurrently and composes the merged view
func (p *Processor) FrontPage(ctx context.Context) (models.FrontPage, error) {
	type result struct {
		key   string
		items []models.NewsItem
	}

	keys := p.Keys()
	results := make(chan result, len(keys))

	for _, key := range keys {
		go func(k string) {
			results <- result{key: k, items: p.listCategory(ctx, k, p.opts.HomePerPage)}
		}(key)
	}

	lists := make(map[string][]models.NewsItem, len(keys))
	for range keys {
		select {
		case <-ctx.Done():
			return models.FrontPage{}, ctx.Err()
		case res := <-results:
			lists[res.key] = res.items
		}
	}

	return BuildFrontPage(lists, keys, p.normalizer.Dates()), nil
}

// Article returns the post with the given slug plus up to three related
// items from the same category.
func (p *Processor) Article(ctx context.Context, key, slug string) (models.ArticlePage, error) {
	log := logger.Component("feed")

	categoryID, ok := p.opts.CategoryIDs[key]
	if !ok {
		return models.ArticlePage{}, fmt.Errorf("%q: %w", key, ErrUnknownCategory)
	}

	cacheKey := "article:" + utils.Hash(key, slug)
	var page models.ArticlePage
	found, err := p.cache.GetJSON(ctx, cacheKey, &page)
	if err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Error reading article cache")
	}
	if found {
		return page, nil
	}

	posts, err := p.source.FetchBySlug(ctx, slug)
	if err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Error fetching article")
		return models.ArticlePage{}, fmt.Errorf("%q: %w", slug, ErrNotFound)
	}
	if len(posts) == 0 {
		return models.ArticlePage{}, fmt.Errorf("%q: %w", slug, ErrNotFound)
	}

	page = models.ArticlePage{
		Item:    p.normalizer.Normalize(posts[0], key),
		Related: []models.NewsItem{},
	}

	relatedPosts, err := p.source.FetchCategory(ctx, categoryID, p.opts.RelatedPerPage)
	if err != nil {
		log.Warn().Err(err).Str("category", key).Msg("Error fetching related posts")
	}
	for _, post := range relatedPosts {
		if len(page.Related) == RelatedCount {
			break
		}
		if post.Slug == slug {
			continue
		}
		page.Related = append(page.Related, p.normalizer.Normalize(post, key))
	}

	if err := p.cache.SetJSON(ctx, cacheKey, page, p.opts.CacheTTL); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Error caching article")
	}
	return page, nil
}

// Refresh drops every cached list and article
func (p *Processor) Refresh(ctx context.Context) error {
	if err := p.cache.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing cache: %w", err)
	}
	log := logger.Component("feed")
	log.Info().Msg("Cache cleared")
	return nil
}

// LoadSnapshot reads back a front page archived by Snapshot
func (p *Processor) LoadSnapshot(ctx context.Context, key string) (models.FrontPage, error) {
	if p.archive == nil {
		return models.FrontPage{}, fmt.Errorf("no archive configured")
	}

	var page models.FrontPage
	if err := p.archive.Load(ctx, key, &page); err != nil {
		return models.FrontPage{}, fmt.Errorf("error loading snapshot: %w", err)
	}
	return page, nil
}

// Snapshot archives the current front page and returns its key
func (p *Processor) Snapshot(ctx context.Context) (string, error) {
	if p.archive == nil {
		return "", fmt.Errorf("no archive configured")
	}

	page, err := p.FrontPage(ctx)
	if err != nil {
		return "", fmt.Errorf("error building front page: %w", err)
	}

	key := storage.SnapshotKey(p.now())
	if err := p.archive.Save(ctx, key, page); err != nil {
		return "", fmt.Errorf("error saving snapshot: %w", err)
	}

	log := logger.Component("feed")
	log.Info().
		Str("key", key).
		Int("featured", len(page.Featured)).
		Int("recent", len(page.Recent)).
		Msg("Front page archived")
	return key, nil
}
