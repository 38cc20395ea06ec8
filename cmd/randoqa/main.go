package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/mbonnet/randoqa/crawl"
	"github.com/mbonnet/randoqa/fs"
	"github.com/mbonnet/randoqa/gemini"
	"github.com/mbonnet/randoqa/goquery"
	"github.com/mbonnet/randoqa/htmltomarkdown"
	randoqahttp "github.com/mbonnet/randoqa/http"
	"github.com/mbonnet/randoqa/rod"
	"github.com/mbonnet/randoqa/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Snapshot file path. Set before calling Run().
	SnapshotPath string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		SnapshotPath: defaultSnapshotPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("randoqa"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'randoqa --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	snapshotPath := m.SnapshotPath
	if cli.Snapshot != "" {
		snapshotPath = cli.Snapshot
	}
	deps.Snapshots = fs.NewSnapshotStore(snapshotPath, logger)

	if cmd == "crawl" {
		fetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()

		markdown := htmltomarkdown.NewConverter()

		deps.Crawler = &crawl.Crawler{
			Fetcher:     rod.NewLoggingFetcher(fetcher, logger),
			Extractor:   goquery.NewExtractor(markdown, trafilatura.NewExtractor(markdown)),
			Links:       goquery.NewLinkExtractor(),
			Snapshots:   deps.Snapshots,
			Sitemaps:    randoqahttp.NewSitemapService(nil),
			RateLimiter: crawl.NewDomainLimiter(cli.Crawl.RPS),
			Logger:      logger,
			MaxDepth:    cli.Crawl.Depth,
		}
	}

	if cmd == "ask" || cmd == "embed" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" && cmd == "embed" {
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		if apiKey != "" {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			deps.Generator = gemini.NewGenerator(client)
			deps.Embedder = gemini.NewEmbedder(client)
		}
		// Without a key "ask" still answers everything the structural
		// resolvers cover.
	}

	return kongCtx.Run(deps)
}

func defaultSnapshotPath() string {
	if path := os.Getenv("RANDOQA_SNAPSHOT"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "website_data.json"
	}
	dir := filepath.Join(home, ".randoqa")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "website_data.json")
}
