package feed

import (
	"sort"
	"time"

	"github.com/ugmineras/noticias/internal/models"
	"github.com/ugmineras/noticias/internal/normalize"
)

const (
	FeaturedCount = 4
	RecentLimit   = 19
	SectionSize   = 5
	RelatedCount  = 3
)

// mergeOrder decides ties when items share a timestamp
var mergeOrder = []string{
	normalize.SanJuan,
	normalize.Nacionales,
	normalize.Internacionales,
	normalize.Sindicales,
	normalize.Opinion,
}

// BuildFrontPage merges the per-category lists, sorts them newest first and
// slices the featured and recent windows. keys gives the section order.
func BuildFrontPage(lists map[string][]models.NewsItem, keys []string, dates *normalize.DateFormatter) models.FrontPage {
	merged := mergeLists(lists, keys)
	sortByDateDesc(merged, dates)

	page := models.FrontPage{
		Featured: window(merged, 0, FeaturedCount),
		Recent:   window(merged, FeaturedCount, RecentLimit),
		Sections: []models.Section{},
	}

	for _, key := range keys {
		items := lists[key]
		if len(items) == 0 {
			continue
		}
		page.Sections = append(page.Sections, models.Section{
			Key:       key,
			Name:      normalize.DisplayName(key),
			Label:     normalize.ShortLabel(key),
			Color:     normalize.ColorToken(key),
			LeadTitle: items[0].Title,
			Items:     window(items, 0, SectionSize),
		})
	}

	return page
}

func mergeLists(lists map[string][]models.NewsItem, keys []string) []models.NewsItem {
	seen := make(map[string]bool, len(keys))
	order := make([]string, 0, len(keys))
	for _, key := range mergeOrder {
		if _, ok := lists[key]; ok {
			order = append(order, key)
			seen[key] = true
		}
	}
	for _, key := range keys {
		if !seen[key] {
			order = append(order, key)
			seen[key] = true
		}
	}

	var merged []models.NewsItem
	for _, key := range order {
		merged = append(merged, lists[key]...)
	}
	return merged
}

// sortByDateDesc orders items by original_date, newest first. Items whose
// date cannot be read go last, keeping their relative order.
func sortByDateDesc(items []models.NewsItem, dates *normalize.DateFormatter) {
	parsed := make(map[string]time.Time, len(items))
	valid := make(map[string]bool, len(items))
	for _, item := range items {
		if _, done := valid[item.OriginalDate]; done {
			continue
		}
		t, ok := dates.Parse(item.OriginalDate)
		parsed[item.OriginalDate] = t
		valid[item.OriginalDate] = ok
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].OriginalDate, items[j].OriginalDate
		switch {
		case !valid[a]:
			return false
		case !valid[b]:
			return true
		default:
			return parsed[a].After(parsed[b])
		}
	})
}

// window returns a copy of items[from:to] clamped to the slice bounds
func window(items []models.NewsItem, from, to int) []models.NewsItem {
	if from > len(items) {
		from = len(items)
	}
	if to > len(items) {
		to = len(items)
	}
	out := make([]models.NewsItem, to-from)
	copy(out, items[from:to])
	return out
}
