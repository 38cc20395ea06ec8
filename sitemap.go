package randoqa

import "context"

// SitemapService discovers URLs from a site's sitemap. The crawler uses
// it to pre-seed the frontier; discovery failure is never fatal because
// the recursive crawl covers the same ground.
type SitemapService interface {
	// DiscoverURLs finds all URLs advertised by the site, checking
	// robots.txt for sitemap directives and falling back to
	// /sitemap.xml. Sitemap indexes are resolved recursively.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
