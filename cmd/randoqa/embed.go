package main

import (
	"fmt"
	"time"

	"github.com/mbonnet/randoqa"
)

// Run executes the embed command. Pages already carrying an embedding
// are skipped, so the command is resumable after a rate-limit abort.
func (c *EmbedCmd) Run(deps *Dependencies) error {
	store, err := deps.Snapshots.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", randoqa.ErrorMessage(err))
		return err
	}

	var pending []*randoqa.Page
	for _, p := range store.Pages {
		if len(p.Embedding) == 0 && p.Content != "" {
			pending = append(pending, p)
		}
	}
	if len(pending) == 0 {
		fmt.Fprintln(deps.Stdout, "All pages already have embeddings.")
		return nil
	}

	for start := 0; start < len(pending); start += c.BatchSize {
		end := start + c.BatchSize
		if end > len(pending) {
			end = len(pending)
		}
		batch := pending[start:end]

		texts := make([]string, len(batch))
		for i, p := range batch {
			texts[i] = p.Title + "\n" + p.Content
		}

		vectors, err := deps.Embedder.EmbedBatch(deps.Ctx, texts)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", randoqa.ErrorMessage(err))
			return err
		}
		for i, p := range batch {
			p.Embedding = vectors[i]
		}

		// Persist after every batch so progress survives an abort.
		if err := deps.Snapshots.Save(deps.Ctx, store); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", randoqa.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Embedded %d/%d pages.\n", end, len(pending))

		if end < len(pending) {
			select {
			case <-deps.Ctx.Done():
				return deps.Ctx.Err()
			case <-time.After(c.Delay):
			}
		}
	}

	return nil
}
