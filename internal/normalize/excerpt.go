package normalize

import (
	"strings"
	"unicode/utf8"
)

const (
	// ExcerptLength is the maximum number of characters kept before the
	// ellipsis. Characters are runes, not bytes: a subtitle holds at most
	// ExcerptLength+len(Ellipsis) runes but may be longer in len().
	ExcerptLength = 150
	Ellipsis      = "..."
)

// BuildExcerpt derives the plain-text subtitle. The CMS excerpt wins when it
// has text; otherwise any non-empty body is used and always ends with the
// ellipsis, even when it carries no text at all.
func BuildExcerpt(rawExcerpt, sanitizedContent string) string {
	excerpt := strings.TrimSpace(Sanitize(strings.TrimSpace(StripTags(rawExcerpt))))
	if excerpt != "" {
		if utf8.RuneCountInString(excerpt) > ExcerptLength {
			return truncate(excerpt, ExcerptLength) + Ellipsis
		}
		return excerpt
	}

	if sanitizedContent == "" {
		return ""
	}
	plain := strings.TrimSpace(StripTags(sanitizedContent))
	return truncate(plain, ExcerptLength) + Ellipsis
}

// truncate keeps the first n characters of s
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
