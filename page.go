package randoqa

import (
	"encoding/json"
	"time"
)

// Page represents one crawled page of the site.
type Page struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	ContentHash string   `json:"contentHash"`
	Metadata    Metadata `json:"metadata"`

	// Embedding is an optional semantic vector for the page content,
	// populated by a separate embedding pass after crawling.
	Embedding []float32 `json:"embedding,omitempty"`
}

// Metadata holds the structured facts extracted from a page. Fields
// default to null/empty rather than being absent so consumers never
// branch on key presence.
type Metadata struct {
	Path          string   `json:"path"`
	Date          *Date    `json:"date"`
	Altitude      *int     `json:"altitude"`
	Features      []string `json:"features"`
	Location      string   `json:"location"`
	IsGalleryPage bool     `json:"isGalleryPage"`
	IsProjectPage bool     `json:"isProjectPage"`
	ProjectsCount int      `json:"projectsCount"`
	PhotoCount    int      `json:"photoCount"`
}

// IsThematic reports whether the page belongs to the fixed set of
// thematic topics. Thematic and gallery are independent tags; the
// distinction matters only for site statistics.
func (m Metadata) IsThematic() bool {
	return IsThematicPath(m.Path)
}

// ProjectEntry is one planned outing scraped from the projects page.
type ProjectEntry struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ParseProjectEntries decodes the serialized project list stored as the
// content of a projects page.
func ParseProjectEntries(content string) ([]ProjectEntry, error) {
	var entries []ProjectEntry
	if err := json.Unmarshal([]byte(content), &entries); err != nil {
		return nil, Errorf(EINVALID, "invalid project list: %v", err)
	}
	return entries, nil
}

// Store is the flat document store: the unit of persistence. It is
// mutated only by the crawler during a crawl and read-only afterwards.
type Store struct {
	CrawlID   string    `json:"crawlId"`
	CrawledAt time.Time `json:"crawledAt"`
	Pages     []*Page   `json:"pages"`
	SiteStats SiteStats `json:"siteStats"`
}

// NewStore returns an empty store with non-nil collections.
func NewStore() *Store {
	return &Store{Pages: []*Page{}, SiteStats: NewSiteStats()}
}

// FindPage returns the page with the given normalized URL, or nil.
func (s *Store) FindPage(url string) *Page {
	target := NormalizeURL(url)
	for _, p := range s.Pages {
		if NormalizeURL(p.URL) == target {
			return p
		}
	}
	return nil
}

// ProjectsPage returns the designated projects page, or nil when the
// crawl did not reach one.
func (s *Store) ProjectsPage() *Page {
	for _, p := range s.Pages {
		if p.Metadata.IsProjectPage {
			return p
		}
	}
	return nil
}
