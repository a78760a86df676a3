package normalize

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/ugmineras/noticias/internal/models"
)

func TestNormalizeFullPost(t *testing.T) {
	n := New(WithLocation(time.UTC))
	post := models.RawPost{
		ID:               4211,
		Slug:             "paro-minero-en-veladero",
		Date:             "2024-03-05T10:00:00",
		Title:            "Paro minero en Veladero &#8211; d&iacute;a 2",
		Content:          "<p>Los trabajadores&nbsp;reclaman.</p>\n\n<p>Fuente: Diario de Cuyo</p>",
		Excerpt:          "<p>Los trabajadores reclaman [&hellip;]</p>\n",
		FeaturedMediaID:  98,
		FeaturedMediaURL: "http://example.files.wordpress.com/veladero.jpg",
	}

	got := n.Normalize(post, SanJuan)
	want := models.NewsItem{
		ID:            "paro-minero-en-veladero",
		Title:         "Paro minero en Veladero - d&iacute;a 2",
		Subtitle:      "Los trabajadores reclaman [&hellip;]",
		Image:         "https://example.files.wordpress.com/veladero.jpg",
		CategoryKey:   SanJuan,
		CategoryName:  "Noticias de San Juan",
		CategoryLabel: "SAN JUAN",
		CategoryColor: "bg-red-500",
		Content:       "<p>Los trabajadores reclaman.</p> <p>Fuente: Diario de Cuyo</p>",
		Source:        "Fuente: Diario de Cuyo",
		Date:          "5 de marzo de 2024",
		OriginalDate:  "2024-03-05T10:00:00",
	}

	if got != want {
		t.Errorf("Normalize() mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestNormalizeEmptyPost(t *testing.T) {
	n := New()
	got := n.Normalize(models.RawPost{}, "")

	if got.ID != "0" {
		t.Errorf("Expected stringified id, got %q", got.ID)
	}
	if got.Title != UntitledTitle {
		t.Errorf("Expected placeholder title, got %q", got.Title)
	}
	if got.Subtitle != "" || got.Content != "" || got.Date != "" || got.OriginalDate != "" {
		t.Errorf("Expected empty text fields, got %+v", got)
	}
	if got.Image != PlaceholderImage {
		t.Errorf("Expected placeholder image, got %q", got.Image)
	}
	if got.Source != DefaultSource {
		t.Errorf("Expected default source, got %q", got.Source)
	}
	if got.CategoryColor == "" || got.CategoryName == "" || got.CategoryLabel == "" {
		t.Errorf("Expected default category metadata, got %+v", got)
	}
}

func TestNormalizeScenarios(t *testing.T) {
	n := New(WithLocation(time.UTC))

	t.Run("first content image forced to https", func(t *testing.T) {
		item := n.Normalize(models.RawPost{
			Content: `<p>Texto con <img src="http://x.com/a.jpg"/> imagen</p>`,
		}, Nacionales)
		if item.Image != "https://x.com/a.jpg" {
			t.Errorf("Expected https content image, got %q", item.Image)
		}
	})

	t.Run("image-only post", func(t *testing.T) {
		item := n.Normalize(models.RawPost{
			Content: `<p><img src="http://x.com/a.jpg"/></p>`,
		}, Nacionales)
		if item.Subtitle != Ellipsis {
			t.Errorf("Expected lone ellipsis subtitle, got %q", item.Subtitle)
		}
		if item.Image != "https://x.com/a.jpg" {
			t.Errorf("Expected https content image, got %q", item.Image)
		}
	})

	t.Run("subtitle from content", func(t *testing.T) {
		body := strings.Repeat("x", 300)
		item := n.Normalize(models.RawPost{Content: "<p>" + body + "</p>"}, Nacionales)
		if item.Subtitle != body[:150]+"..." {
			t.Errorf("Expected first 150 characters plus ellipsis, got %q", item.Subtitle)
		}
	})

	t.Run("spanish date", func(t *testing.T) {
		item := n.Normalize(models.RawPost{Date: "2024-03-05T10:00:00Z"}, Nacionales)
		if item.Date != "5 de marzo de 2024" {
			t.Errorf("Expected spanish long date, got %q", item.Date)
		}
		if item.OriginalDate != "2024-03-05T10:00:00Z" {
			t.Errorf("Expected original date preserved, got %q", item.OriginalDate)
		}
	})

	t.Run("inline source", func(t *testing.T) {
		item := n.Normalize(models.RawPost{Content: "Fuente: Diario Norte."}, Nacionales)
		if item.Source != "Fuente: Diario Norte." {
			t.Errorf("Expected inline source, got %q", item.Source)
		}
	})

	t.Run("empty title", func(t *testing.T) {
		item := n.Normalize(models.RawPost{Title: ""}, Nacionales)
		if item.Title != "Sin título" {
			t.Errorf("Expected placeholder title, got %q", item.Title)
		}
	})

	t.Run("whitespace title", func(t *testing.T) {
		item := n.Normalize(models.RawPost{Title: " &nbsp; "}, Nacionales)
		if item.Title != UntitledTitle {
			t.Errorf("Expected placeholder title, got %q", item.Title)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		item := n.Normalize(models.RawPost{}, "xyz")
		if item.CategoryName != "Noticia" || item.CategoryLabel != "NOTICIA" || item.CategoryColor != ColorToken("") {
			t.Errorf("Expected default category metadata, got %+v", item)
		}
		if item.CategoryKey != "xyz" {
			t.Errorf("Expected caller key to be kept, got %q", item.CategoryKey)
		}
	})

	t.Run("slug preferred over id", func(t *testing.T) {
		if item := n.Normalize(models.RawPost{ID: 9, Slug: "nota"}, Nacionales); item.ID != "nota" {
			t.Errorf("Expected slug id, got %q", item.ID)
		}
		if item := n.Normalize(models.RawPost{ID: 9}, Nacionales); item.ID != "9" {
			t.Errorf("Expected numeric id, got %q", item.ID)
		}
	})
}

func TestNormalizeAll(t *testing.T) {
	n := New()

	empty := n.NormalizeAll(nil, Opinion)
	if empty == nil || len(empty) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", empty)
	}

	posts := []models.RawPost{
		{ID: 3, Slug: "c"},
		{ID: 1, Slug: "a"},
		{ID: 2, Slug: "b"},
	}
	items := n.NormalizeAll(posts, Opinion)
	if len(items) != len(posts) {
		t.Fatalf("Expected %d items, got %d", len(posts), len(items))
	}
	for i, item := range items {
		if item.ID != posts[i].Slug {
			t.Errorf("Expected order preserved at %d: got %q, want %q", i, item.ID, posts[i].Slug)
		}
		if item.CategoryKey != Opinion {
			t.Errorf("Expected category %q, got %q", Opinion, item.CategoryKey)
		}
	}
}

// samplePosts builds a grid of posts mixing present and absent fields.
func samplePosts() []models.RawPost {
	titles := []string{"", "  ", "Título &amp; más"}
	contents := []string{
		"",
		"<p>" + strings.Repeat("palabra ", 80) + "</p>",
		`<p>Fuente: Agencia</p><img src="http://x.com/a.jpg">`,
		`<img src="https://x.com/b.jpg"><p>` + strings.Repeat("ñandú ", 60) + `</p>`,
	}
	excerpts := []string{"", "<p>Breve</p>", strings.Repeat("é", 400)}
	media := []models.RawPost{
		{},
		{FeaturedMediaID: 5},
		{FeaturedMediaID: 5, FeaturedMediaURL: "http://cdn.x.com/f.jpg"},
	}
	dates := []string{"", "2024-03-05T10:00:00", "basura"}

	var posts []models.RawPost
	for _, title := range titles {
		for _, content := range contents {
			for _, excerpt := range excerpts {
				for _, m := range media {
					for _, date := range dates {
						posts = append(posts, models.RawPost{
							ID:               1,
							Title:            title,
							Content:          content,
							Excerpt:          excerpt,
							Date:             date,
							FeaturedMediaID:  m.FeaturedMediaID,
							FeaturedMediaURL: m.FeaturedMediaURL,
						})
					}
				}
			}
		}
	}
	return posts
}

func TestNormalizeInvariants(t *testing.T) {
	n := New()
	keys := append([]string{"xyz", ""}, Keys...)

	for _, post := range samplePosts() {
		for _, key := range keys {
			item := n.Normalize(post, key)

			if l := utf8.RuneCountInString(item.Subtitle); l > ExcerptLength+len(Ellipsis) {
				t.Errorf("Subtitle too long (%d) for %+v", l, post)
			}
			if item.Image == "" {
				t.Errorf("Empty image for %+v", post)
			}
			if item.Image != PlaceholderImage && !strings.HasPrefix(item.Image, "https://") {
				t.Errorf("Image %q is neither placeholder nor https", item.Image)
			}
			if item.Source == "" || item.Title == "" || item.ID == "" {
				t.Errorf("Expected non-empty source, title and id, got %+v", item)
			}
			if !strings.Contains(Sanitize(post.Content), "Fuente:") && item.Source != DefaultSource {
				t.Errorf("Expected default source, got %q", item.Source)
			}
			if item.OriginalDate != post.Date {
				t.Errorf("Expected original date %q, got %q", post.Date, item.OriginalDate)
			}
			if again := n.Normalize(post, key); again != item {
				t.Errorf("Normalize is not deterministic for %+v", post)
			}
		}
	}
}
