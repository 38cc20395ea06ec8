package randoqa

import (
	"strings"
	"time"
)

// HikeCriteria filters outing pages. All provided criteria are
// AND-combined; zero-valued fields are ignored.
type HikeCriteria struct {
	MinAltitude *int
	MaxAltitude *int
	Features    []string
	StartDate   *time.Time
	EndDate     *time.Time
	Location    string
}

// SearchHikes returns the pages matching all provided criteria. It is a
// pure filter over the store: insertion order is preserved.
func SearchHikes(store *Store, c HikeCriteria) []*Page {
	var matches []*Page
	for _, p := range store.Pages {
		if !matchesCriteria(p, c) {
			continue
		}
		matches = append(matches, p)
	}
	return matches
}

func matchesCriteria(p *Page, c HikeCriteria) bool {
	m := p.Metadata

	if c.MinAltitude != nil && (m.Altitude == nil || *m.Altitude < *c.MinAltitude) {
		return false
	}
	if c.MaxAltitude != nil && (m.Altitude == nil || *m.Altitude > *c.MaxAltitude) {
		return false
	}

	for _, want := range c.Features {
		if !containsString(m.Features, want) {
			return false
		}
	}

	if c.StartDate != nil || c.EndDate != nil {
		if m.Date == nil {
			return false
		}
		when := m.Date.Time()
		if c.StartDate != nil && when.Before(*c.StartDate) {
			return false
		}
		if c.EndDate != nil && when.After(*c.EndDate) {
			return false
		}
	}

	if c.Location != "" && !strings.Contains(strings.ToLower(m.Location), strings.ToLower(c.Location)) {
		return false
	}

	return true
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
