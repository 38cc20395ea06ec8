package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/mbonnet/randoqa"
	"github.com/mbonnet/randoqa/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Snapshots randoqa.SnapshotStore
	Crawler   *crawl.Crawler
	Generator randoqa.Generator
	Embedder  randoqa.Embedder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Snapshot string `help:"Snapshot file path (overrides RANDOQA_SNAPSHOT)"`

	Crawl CrawlCmd `cmd:"" help:"Crawl the photo site and save a snapshot"`
	Ask   AskCmd   `cmd:"" help:"Answer a question from the latest snapshot"`
	Stats StatsCmd `cmd:"" help:"Show statistics for the latest snapshot"`
	Embed EmbedCmd `cmd:"" help:"Compute embeddings for snapshot pages"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL   string  `arg:"" help:"Site root URL"`
	Depth int     `default:"5" help:"Maximum link depth from the root"`
	RPS   float64 `name:"rps" default:"1" help:"Requests per second per domain"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question in French"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// EmbedCmd is the "embed" subcommand.
type EmbedCmd struct {
	BatchSize int           `default:"20" help:"Texts per embedding call"`
	Delay     time.Duration `default:"3s" help:"Pause between embedding calls"`
}
