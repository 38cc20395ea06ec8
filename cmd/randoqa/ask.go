package main

import (
	"fmt"

	"github.com/mbonnet/randoqa"
	"github.com/mbonnet/randoqa/answer"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	store, err := deps.Snapshots.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", randoqa.ErrorMessage(err))
		return err
	}

	if len(store.Pages) == 0 {
		fmt.Fprintln(deps.Stderr, "The snapshot is empty. Run 'randoqa crawl' first.")
	}

	resolver := answer.NewResolver(store, deps.Generator, deps.Logger)
	fmt.Fprintln(deps.Stdout, resolver.Answer(deps.Ctx, c.Question))
	return nil
}
