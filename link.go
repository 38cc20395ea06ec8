package randoqa

import (
	"net/url"
	"regexp"
	"strings"
)

// Link is a hyperlink discovered on a crawled page.
type Link struct {
	URL  string
	Text string
}

// Classification is the result of classifying a discovered link against
// the site's route taxonomy. All fields are pure predicates over the
// link's path; the crawler combines them into a follow decision.
type Classification struct {
	Path             string
	IsInternal       bool
	IsYearsPage      bool
	IsYearLink       bool
	IsMonthLink      bool
	IsThematicPage   bool
	IsProjectPage    bool
	IsOnYearsPage    bool
	IsValidYearRoute bool
}

// thematicPaths is the fixed set of special-topic pages, distinct from
// dated outings.
var thematicPaths = map[string]bool{
	"/mountain_flowers": true,
	"/mountain_animals": true,
	"/memories":         true,
	"/dreams":           true,
}

var (
	yearLinkRe      = regexp.MustCompile(`^/20\d{2}$`)
	monthLinkRe     = regexp.MustCompile(`^/month/20\d{2}/\d{1,2}$`)
	validYearRoutRe = regexp.MustCompile(`^/(20\d{2}|bestof|index|future|in_my_life|year2016)$`)
)

// IsThematicPath reports whether path belongs to the thematic allowlist.
func IsThematicPath(path string) bool {
	return thematicPaths[strings.TrimSuffix(path, "/")]
}

// IsProjectPath reports whether path is the designated projects page.
func IsProjectPath(path string) bool {
	return strings.TrimSuffix(path, "/") == "/projets"
}

// IsMonthIndexPath reports whether path is a month index page. Dates are
// never extracted at that granularity because the page aggregates a
// whole month of outings.
func IsMonthIndexPath(path string) bool {
	return monthLinkRe.MatchString(strings.TrimSuffix(path, "/"))
}

// ClassifyLink classifies a discovered link relative to the crawl's base
// origin and the page it was found on. It has no side effects; the
// crawler uses it purely as a follow predicate.
func ClassifyLink(rawURL, baseOrigin, currentURL string) Classification {
	var c Classification

	u, err := url.Parse(rawURL)
	if err != nil {
		return c
	}
	path := strings.TrimSuffix(u.Path, "/")
	if path == "" {
		path = "/"
	}

	c.Path = path
	c.IsInternal = strings.HasPrefix(rawURL, baseOrigin)
	c.IsYearsPage = path == "/years"
	c.IsYearLink = yearLinkRe.MatchString(path)
	c.IsMonthLink = monthLinkRe.MatchString(path)
	c.IsThematicPage = thematicPaths[path]
	c.IsProjectPage = IsProjectPath(path)
	c.IsOnYearsPage = strings.HasSuffix(strings.TrimSuffix(currentURL, "/"), "/years")
	c.IsValidYearRoute = validYearRoutRe.MatchString(path)

	return c
}

// Followable reports whether the crawler should recurse into the link.
// The conditions bound fan-out on a site whose navigation graph is
// otherwise dense: year/month navigation, the years index, thematic and
// project pages, and everything reachable from the root page itself.
func (c Classification) Followable(depth int) bool {
	if !c.IsInternal {
		return false
	}
	return c.IsYearsPage ||
		c.IsYearLink ||
		c.IsMonthLink ||
		depth == 0 ||
		(c.IsOnYearsPage && c.IsValidYearRoute) ||
		c.IsThematicPage ||
		c.IsProjectPage
}

// yearRoutes maps the site's year navigation to routes. The years index
// page encodes this navigation outside normal anchors, so the crawler
// synthesizes these links when it visits /years.
var yearRoutes = []struct {
	Year  string
	Route string
}{
	{"2016", "/year2016"},
	{"2017", "/2017"},
	{"2018", "/2018"},
	{"2019", "/2019"},
	{"2020", "/2020"},
	{"2021", "/2021"},
	{"2022", "/2022"},
	{"2023", "/bestof"},
	{"2024", "/index"},
	{"2025", "/future"},
	{"Archives", "/in_my_life"},
}

// SyntheticYearLinks returns the fixed year navigation links for the
// given origin, used to supplement anchors on the years index page.
func SyntheticYearLinks(origin string) []Link {
	links := make([]Link, 0, len(yearRoutes))
	for _, yr := range yearRoutes {
		links = append(links, Link{
			URL:  strings.TrimSuffix(origin, "/") + yr.Route,
			Text: yr.Year,
		})
	}
	return links
}

// NormalizeURL strips the fragment and any trailing slash so that URLs
// differing only in those details dedupe to one visit.
func NormalizeURL(rawURL string) string {
	s := rawURL
	if idx := strings.Index(s, "#"); idx != -1 {
		s = s[:idx]
	}
	for len(s) > 1 && strings.HasSuffix(s, "/") {
		// Keep the scheme's double slash intact.
		if strings.HasSuffix(s, "://") {
			break
		}
		s = strings.TrimSuffix(s, "/")
	}
	return s
}
