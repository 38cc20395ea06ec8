package main

import (
	"fmt"

	"github.com/mbonnet/randoqa"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	store, err := deps.Crawler.Run(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", randoqa.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Crawled %d pages (%d outings, %d thematic).\n",
		store.SiteStats.TotalPages, store.SiteStats.TotalOutings, store.SiteStats.ThematicPages)
	fmt.Fprintf(deps.Stdout, "Crawl %s saved.\n", store.CrawlID)
	return nil
}
