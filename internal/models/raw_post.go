package models

import "encoding/json"

// RawPost represents a post as delivered by the WordPress REST API
type RawPost struct {
	ID               int64
	Slug             string
	Date             string
	Title            string
	Content          string
	Excerpt          string
	FeaturedMediaID  int64
	FeaturedMediaURL string
}

type rendered struct {
	Rendered string `json:"rendered"`
}

// wpPost mirrors the wire shape of /wp/v2/posts?_embed
type wpPost struct {
	ID            int64    `json:"id"`
	Slug          string   `json:"slug"`
	Date          string   `json:"date"`
	Title         rendered `json:"title"`
	Content       rendered `json:"content"`
	Excerpt       rendered `json:"excerpt"`
	FeaturedMedia int64    `json:"featured_media"`
	Embedded      struct {
		FeaturedMedia []struct {
			SourceURL string `json:"source_url"`
		} `json:"wp:featuredmedia"`
	} `json:"_embedded"`
}

// UnmarshalJSON flattens the nested rendered fields and the embedded media URL.
func (p *RawPost) UnmarshalJSON(data []byte) error {
	var wp wpPost
	if err := json.Unmarshal(data, &wp); err != nil {
		return err
	}

	*p = RawPost{
		ID:              wp.ID,
		Slug:            wp.Slug,
		Date:            wp.Date,
		Title:           wp.Title.Rendered,
		Content:         wp.Content.Rendered,
		Excerpt:         wp.Excerpt.Rendered,
		FeaturedMediaID: wp.FeaturedMedia,
	}
	if len(wp.Embedded.FeaturedMedia) > 0 {
		p.FeaturedMediaURL = wp.Embedded.FeaturedMedia[0].SourceURL
	}
	return nil
}

// HasFeaturedMedia reports whether the CMS associated a featured image with the post.
func (p RawPost) HasFeaturedMedia() bool {
	return p.FeaturedMediaID != 0
}
