package randoqa

// SiteStats holds derived site-wide statistics. They are fully
// recomputed from the page collection after every crawl and on every
// load, never incrementally patched.
type SiteStats struct {
	TotalPages       int                 `json:"totalPages"`
	TotalOutings     int                 `json:"totalOutings"`
	ThematicPages    int                 `json:"thematicPages"`
	OutingsByYear    map[int]int         `json:"outingsByYear"`
	OutingsByMonth   map[int]map[int]int `json:"outingsByMonth"`
	OutingsByFeature map[string][]string `json:"outingsByFeature"`
}

// NewSiteStats returns zeroed statistics with non-nil maps.
func NewSiteStats() SiteStats {
	return SiteStats{
		OutingsByYear:    map[int]int{},
		OutingsByMonth:   map[int]map[int]int{},
		OutingsByFeature: map[string][]string{},
	}
}

// Aggregate recomputes site statistics from a page list. It is a pure
// function of its input and safe to call repeatedly.
//
// An outing is a gallery page with a resolved date. Pages with an
// unparseable or absent date contribute to TotalPages but to no outing
// bucket: under-counting is preferred over guessing.
func Aggregate(pages []*Page) SiteStats {
	stats := NewSiteStats()
	stats.TotalPages = len(pages)

	for _, p := range pages {
		if p.Metadata.IsThematic() {
			stats.ThematicPages++
		}

		if !p.Metadata.IsGalleryPage || p.Metadata.Date == nil {
			continue
		}
		date := *p.Metadata.Date
		month := date.MonthNumber()
		if month == 0 {
			continue
		}

		stats.TotalOutings++
		stats.OutingsByYear[date.Year]++
		if stats.OutingsByMonth[date.Year] == nil {
			stats.OutingsByMonth[date.Year] = map[int]int{}
		}
		stats.OutingsByMonth[date.Year][month]++

		for _, feature := range p.Metadata.Features {
			stats.OutingsByFeature[feature] = append(stats.OutingsByFeature[feature], p.URL)
		}
	}

	return stats
}
