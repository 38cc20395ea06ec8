package main

import (
	"fmt"
	"sort"

	"github.com/mbonnet/randoqa"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	store, err := deps.Snapshots.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", randoqa.ErrorMessage(err))
		return err
	}

	stats := store.SiteStats
	fmt.Fprintf(deps.Stdout, "Pages:     %d\n", stats.TotalPages)
	fmt.Fprintf(deps.Stdout, "Outings:   %d\n", stats.TotalOutings)
	fmt.Fprintf(deps.Stdout, "Thematic:  %d\n", stats.ThematicPages)

	years := make([]int, 0, len(stats.OutingsByYear))
	for year := range stats.OutingsByYear {
		years = append(years, year)
	}
	sort.Ints(years)
	for _, year := range years {
		fmt.Fprintf(deps.Stdout, "  %d: %d outings\n", year, stats.OutingsByYear[year])
	}

	features := make([]string, 0, len(stats.OutingsByFeature))
	for feature := range stats.OutingsByFeature {
		features = append(features, feature)
	}
	sort.Strings(features)
	for _, feature := range features {
		fmt.Fprintf(deps.Stdout, "  %s: %d pages\n", feature, len(stats.OutingsByFeature[feature]))
	}

	return nil
}
