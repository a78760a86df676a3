package models

// NewsItem represents a normalized, display-ready post
type NewsItem struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Image         string `json:"image"`
	CategoryKey   string `json:"category_key"`
	CategoryName  string `json:"category_name"`
	CategoryLabel string `json:"category_label"`
	CategoryColor string `json:"category_color"`
	Content       string `json:"content"`
	Source        string `json:"source"`
	Date          string `json:"date"`
	OriginalDate  string `json:"original_date"`
}

// Section is the per-category block of the front page
type Section struct {
	Key       string     `json:"key"`
	Name      string     `json:"name"`
	Label     string     `json:"label"`
	Color     string     `json:"color"`
	LeadTitle string     `json:"lead_title"`
	Items     []NewsItem `json:"items"`
}

// FrontPage holds the merged view across all categories
type FrontPage struct {
	Featured []NewsItem `json:"featured"`
	Recent   []NewsItem `json:"recent"`
	Sections []Section  `json:"sections"`
}

// ArticlePage is a single item plus a few items from the same category
type ArticlePage struct {
	Item    NewsItem   `json:"item"`
	Related []NewsItem `json:"related"`
}
