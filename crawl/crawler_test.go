package crawl_test

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/mbonnet/randoqa"
	"github.com/mbonnet/randoqa/crawl"
	"github.com/mbonnet/randoqa/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const origin = "https://hiking-gallery.vercel.app"

// testSite is a fake site: a link graph served by mock components, with
// per-URL fetch counting.
type testSite struct {
	mu      sync.Mutex
	links   map[string][]randoqa.Link
	fetched map[string]int
	failing map[string]bool
}

func newTestSite(links map[string][]randoqa.Link) *testSite {
	return &testSite{
		links:   links,
		fetched: map[string]int{},
		failing: map[string]bool{},
	}
}

func (s *testSite) fetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, rawURL string) (string, error) {
			s.mu.Lock()
			s.fetched[rawURL]++
			fail := s.failing[rawURL]
			s.mu.Unlock()
			if fail {
				return "", errors.New("navigation timeout")
			}
			return "<html>" + rawURL + "</html>", nil
		},
	}
}

func (s *testSite) linkExtractor() *mock.LinkExtractor {
	return &mock.LinkExtractor{
		ExtractLinksFn: func(html, baseURL string) ([]randoqa.Link, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return s.links[baseURL], nil
		},
	}
}

func (s *testSite) extractor() *mock.Extractor {
	return &mock.Extractor{
		ExtractFn: func(html, pageURL string) (*randoqa.ExtractResult, error) {
			u, err := url.Parse(pageURL)
			if err != nil {
				return nil, err
			}
			return &randoqa.ExtractResult{
				Title:    strings.TrimPrefix(u.Path, "/"),
				Content:  "contenu de " + pageURL,
				Metadata: randoqa.Metadata{Path: u.Path, Features: []string{}},
			}, nil
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newCrawler(site *testSite) *crawl.Crawler {
	return &crawl.Crawler{
		Fetcher:     site.fetcher(),
		Extractor:   site.extractor(),
		Links:       site.linkExtractor(),
		Logger:      discardLogger(),
		MaxAttempts: 1,
	}
}

// fullSiteLinks describes the navigation graph used by most tests:
// the root links to the main sections, the years index relies on
// synthesized year routes, and a year page links to a month index.
func fullSiteLinks() map[string][]randoqa.Link {
	return map[string][]randoqa.Link{
		origin: {
			{URL: origin + "/years", Text: "Par année"},
			{URL: origin + "/projets", Text: "Projets"},
			{URL: origin + "/mountain_flowers", Text: "Flore"},
			{URL: origin + "/2024", Text: "2024"},
			{URL: "https://external.example.com/ads", Text: "Pub"},
		},
		origin + "/2024": {
			{URL: origin + "/month/2024/1", Text: "Janvier"},
		},
		origin + "/month/2024/1": {
			{URL: origin, Text: "Accueil"},
		},
	}
}

func TestCrawler_VisitsEachPageExactlyOnce(t *testing.T) {
	t.Parallel()

	site := newTestSite(fullSiteLinks())
	store, err := newCrawler(site).Run(context.Background(), origin+"/")
	require.NoError(t, err)

	// Root, three sections, one year, one month index, plus the eleven
	// synthesized year routes.
	assert.Len(t, store.Pages, 17)

	for u, n := range site.fetched {
		assert.Equal(t, 1, n, "URL %s fetched %d times", u, n)
	}
	assert.NotContains(t, site.fetched, "https://external.example.com/ads")

	assert.NotEmpty(t, store.CrawlID)
	assert.False(t, store.CrawledAt.IsZero())
	assert.Equal(t, 17, store.SiteStats.TotalPages)
}

func TestCrawler_SynthesizesYearRoutesFromYearsIndex(t *testing.T) {
	t.Parallel()

	site := newTestSite(fullSiteLinks())
	store, err := newCrawler(site).Run(context.Background(), origin+"/")
	require.NoError(t, err)

	for _, route := range []string{"/year2016", "/2017", "/2022", "/bestof", "/index", "/future", "/in_my_life"} {
		assert.NotNil(t, store.FindPage(origin+route), "missing synthesized route %s", route)
	}
}

func TestCrawler_DepthBound(t *testing.T) {
	t.Parallel()

	site := newTestSite(fullSiteLinks())
	c := newCrawler(site)
	c.MaxDepth = 1

	store, err := c.Run(context.Background(), origin+"/")
	require.NoError(t, err)

	// Root plus its four internal links; nothing found on depth-1
	// pages is followed, including the synthesized year routes.
	assert.Len(t, store.Pages, 5)
	assert.Nil(t, store.FindPage(origin+"/month/2024/1"))
	assert.Nil(t, store.FindPage(origin+"/bestof"))
}

func TestCrawler_SkipsPageAfterFetchFailure(t *testing.T) {
	t.Parallel()

	site := newTestSite(fullSiteLinks())
	site.failing[origin+"/projets"] = true

	store, err := newCrawler(site).Run(context.Background(), origin+"/")
	require.NoError(t, err)

	assert.Nil(t, store.FindPage(origin+"/projets"))
	assert.NotNil(t, store.FindPage(origin+"/2024"))
	assert.Len(t, store.Pages, 16)
}

func TestCrawler_SavesSnapshot(t *testing.T) {
	t.Parallel()

	site := newTestSite(fullSiteLinks())

	var saved *randoqa.Store
	c := newCrawler(site)
	c.Snapshots = &mock.SnapshotStore{
		SaveFn: func(ctx context.Context, store *randoqa.Store) error {
			saved = store
			return nil
		},
	}

	store, err := c.Run(context.Background(), origin+"/")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Same(t, store, saved)
}

func TestCrawler_SeedsRouteShapedSitemapURLs(t *testing.T) {
	t.Parallel()

	site := newTestSite(map[string][]randoqa.Link{})
	c := newCrawler(site)
	c.Sitemaps = &mock.SitemapService{
		DiscoverURLsFn: func(ctx context.Context, baseURL string) ([]string, error) {
			return []string{
				origin + "/2019",
				origin + "/assets/photo.jpg",
				"https://other.example.com/2020",
			}, nil
		},
	}

	store, err := c.Run(context.Background(), origin+"/")
	require.NoError(t, err)

	assert.NotNil(t, store.FindPage(origin+"/2019"))
	assert.Nil(t, store.FindPage(origin+"/assets/photo.jpg"))
	assert.Nil(t, store.FindPage("https://other.example.com/2020"))
	assert.Len(t, store.Pages, 2)
}

func TestCrawler_SitemapFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	site := newTestSite(map[string][]randoqa.Link{})
	c := newCrawler(site)
	c.Sitemaps = &mock.SitemapService{
		DiscoverURLsFn: func(ctx context.Context, baseURL string) ([]string, error) {
			return nil, errors.New("404 not found")
		},
	}

	store, err := c.Run(context.Background(), origin+"/")
	require.NoError(t, err)
	assert.Len(t, store.Pages, 1)
}

func TestCrawler_InvalidStartURL(t *testing.T) {
	t.Parallel()

	site := newTestSite(map[string][]randoqa.Link{})
	_, err := newCrawler(site).Run(context.Background(), "not-a-url")
	require.Error(t, err)
	assert.Equal(t, randoqa.EINVALID, randoqa.ErrorCode(err))
}

func TestCrawler_ContentHashIsStable(t *testing.T) {
	t.Parallel()

	h1 := crawl.ContentHash("Randonnée au lac Blanc, 2352 m")
	h2 := crawl.ContentHash("Randonnée au lac Blanc, 2352 m")
	h3 := crawl.ContentHash("Randonnée au lac Noir, 2550 m")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.NotEmpty(t, h1)
}
