// Package crawl orchestrates depth-bounded crawls of the hiking site.
// It combines the frontier, per-domain rate limiting and fetch retries
// into a sequential crawl loop that produces a complete document store.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/mbonnet/randoqa"
)

// Frontier and crawl sizing.
const (
	// DefaultMaxDepth bounds how far the crawl follows links from the
	// start page.
	DefaultMaxDepth = 5

	// DefaultFetchTimeout caps a single fetch attempt, including page
	// rendering.
	DefaultFetchTimeout = 30 * time.Second

	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01

	// maxCrawlURLs limits the number of pages processed to prevent
	// runaway crawls on unexpected site structure.
	maxCrawlURLs = 1000
)

// Crawler crawls the site sequentially, extracting each visited page
// into the store. Pages are visited at most once per crawl; links are
// followed only when the route taxonomy allows it.
type Crawler struct {
	Fetcher     randoqa.Fetcher
	Extractor   randoqa.Extractor
	Links       randoqa.LinkExtractor
	Snapshots   randoqa.SnapshotStore
	Sitemaps    randoqa.SitemapService
	RateLimiter randoqa.DomainLimiter
	Logger      *slog.Logger

	// MaxDepth bounds link following; zero means DefaultMaxDepth.
	MaxDepth int

	// MaxAttempts is the total number of fetch attempts per URL;
	// zero means DefaultMaxAttempts.
	MaxAttempts int

	// FetchTimeout caps each fetch attempt; zero means
	// DefaultFetchTimeout.
	FetchTimeout time.Duration
}

// Run crawls the site starting from startURL and returns the populated
// store. Fetch failures on individual pages are logged and skipped;
// only context cancellation or an invalid start URL abort the crawl.
// When a snapshot store is configured the result is persisted before
// returning.
func (c *Crawler) Run(ctx context.Context, startURL string) (*randoqa.Store, error) {
	u, err := url.Parse(startURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, randoqa.Errorf(randoqa.EINVALID, "invalid start URL: %s", startURL)
	}
	origin := u.Scheme + "://" + u.Host

	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxDepth := c.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	fetchTimeout := c.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = DefaultFetchTimeout
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)

	// Pre-seed from the sitemap when available. Only route-shaped URLs
	// are seeded; discovery failure falls back to recursive crawling.
	if c.Sitemaps != nil {
		c.seedFromSitemap(ctx, frontier, origin, startURL, logger)
	}

	// Pushed last so the start page pops first.
	frontier.Push(Entry{URL: startURL, Depth: 0})

	store := randoqa.NewStore()
	logger.Info("crawl started", slog.String("start", startURL), slog.Int("maxDepth", maxDepth))

	for {
		entry, ok := frontier.Pop()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(store.Pages) >= maxCrawlURLs {
			logger.Warn("crawl page limit reached", slog.Int("limit", maxCrawlURLs))
			break
		}

		page, links, err := c.visit(ctx, entry, fetchTimeout, logger)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Warn("skipping page after retries",
				slog.String("url", entry.URL),
				slog.String("error", err.Error()))
			continue
		}

		store.Pages = append(store.Pages, page)
		logger.Info("page crawled",
			slog.String("url", entry.URL),
			slog.Int("depth", entry.Depth),
			slog.Int("pages", len(store.Pages)))

		if entry.Depth >= maxDepth {
			continue
		}
		for _, link := range links {
			cl := randoqa.ClassifyLink(link.URL, origin, entry.URL)
			if cl.Followable(entry.Depth) {
				frontier.Push(Entry{URL: link.URL, Depth: entry.Depth + 1})
			}
		}
		// The years index encodes its navigation outside normal
		// anchors, so the year routes are queued explicitly.
		if isYearsPage(entry.URL) {
			for _, link := range randoqa.SyntheticYearLinks(origin) {
				frontier.Push(Entry{URL: link.URL, Depth: entry.Depth + 1})
			}
		}
	}

	store.CrawlID = uuid.NewString()
	store.CrawledAt = time.Now().UTC()
	store.SiteStats = randoqa.Aggregate(store.Pages)

	logger.Info("crawl finished",
		slog.String("crawlId", store.CrawlID),
		slog.Int("pages", len(store.Pages)),
		slog.Int("outings", store.SiteStats.TotalOutings))

	if c.Snapshots != nil {
		if err := c.Snapshots.Save(ctx, store); err != nil {
			return nil, fmt.Errorf("save snapshot: %w", err)
		}
	}
	return store, nil
}

// visit fetches one page with retry and extracts its links and content.
func (c *Crawler) visit(ctx context.Context, entry Entry, fetchTimeout time.Duration, logger *slog.Logger) (*randoqa.Page, []randoqa.Link, error) {
	if c.RateLimiter != nil {
		if u, err := url.Parse(entry.URL); err == nil {
			if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
				return nil, nil, err
			}
		}
	}

	fetch := func(ctx context.Context, rawURL string) (string, error) {
		fctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()
		return c.Fetcher.Fetch(fctx, rawURL)
	}
	html, err := FetchWithRetry(ctx, entry.URL, fetch, logger, c.MaxAttempts)
	if err != nil {
		return nil, nil, err
	}

	var links []randoqa.Link
	if c.Links != nil {
		links, err = c.Links.ExtractLinks(html, entry.URL)
		if err != nil {
			logger.Warn("link extraction failed",
				slog.String("url", entry.URL),
				slog.String("error", err.Error()))
			links = nil
		}
	}

	extracted, err := c.Extractor.Extract(html, entry.URL)
	if err != nil {
		return nil, nil, err
	}

	page := &randoqa.Page{
		URL:         randoqa.NormalizeURL(entry.URL),
		Title:       extracted.Title,
		Content:     extracted.Content,
		ContentHash: ContentHash(extracted.Content),
		Metadata:    extracted.Metadata,
	}
	return page, links, nil
}

// seedFromSitemap queues route-shaped sitemap URLs at depth 1. URLs
// outside the site's route taxonomy are ignored so the seed cannot
// widen the crawl beyond what link following would reach.
func (c *Crawler) seedFromSitemap(ctx context.Context, frontier *Frontier, origin, startURL string, logger *slog.Logger) {
	urls, err := c.Sitemaps.DiscoverURLs(ctx, origin)
	if err != nil {
		logger.Warn("sitemap discovery failed", slog.String("error", err.Error()))
		return
	}
	seeded := 0
	for _, rawURL := range urls {
		cl := randoqa.ClassifyLink(rawURL, origin, startURL)
		if !cl.IsInternal {
			continue
		}
		if cl.IsValidYearRoute || cl.IsMonthLink || cl.IsThematicPage || cl.IsProjectPage || cl.IsYearsPage {
			if frontier.Push(Entry{URL: rawURL, Depth: 1}) {
				seeded++
			}
		}
	}
	if seeded > 0 {
		logger.Info("frontier seeded from sitemap", slog.Int("urls", seeded))
	}
}

func isYearsPage(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	cl := randoqa.ClassifyLink(rawURL, u.Scheme+"://"+u.Host, "")
	return cl.IsYearsPage
}

// ContentHash returns the xxhash digest of page content, used to detect
// unchanged pages across crawls.
func ContentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
