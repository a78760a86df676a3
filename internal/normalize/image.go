package normalize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ugmineras/noticias/internal/models"
)

// PlaceholderImage is served when a post carries no usable image
const PlaceholderImage = "/logo.png"

// ResolveImage picks the featured media URL, then the first <img> in the
// content, then the placeholder.
func ResolveImage(raw models.RawPost, sanitizedContent string) string {
	if raw.HasFeaturedMedia() {
		if url := strings.TrimSpace(raw.FeaturedMediaURL); url != "" {
			return ForceHTTPS(url)
		}
	}
	if src := FirstImageSrc(sanitizedContent); src != "" {
		return ForceHTTPS(src)
	}
	return PlaceholderImage
}

// FirstImageSrc returns the src of the first <img> in document order that has
// a non-empty src attribute.
func FirstImageSrc(content string) string {
	if !strings.Contains(strings.ToLower(content), "<img") {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return ""
	}

	var src string
	doc.Find("img[src]").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		value, _ := img.Attr("src")
		value = strings.TrimSpace(value)
		if value == "" {
			return true
		}
		src = value
		return false
	})
	return src
}

// ForceHTTPS rewrites a leading http: scheme to https:.
func ForceHTTPS(url string) string {
	if strings.HasPrefix(url, "http:") {
		return "https:" + strings.TrimPrefix(url, "http:")
	}
	return url
}
