// Package rod implements page fetching with Chrome browser automation.
// The hiking site renders its galleries client-side, so plain HTTP gets
// an empty shell; a real browser is needed to observe the final DOM.
package rod

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/mbonnet/randoqa"
)

var _ randoqa.Fetcher = (*Fetcher)(nil)

// DefaultSettleDelay is how long Fetch waits after load before reading
// the DOM, giving client-side scripts time to fill the page.
const DefaultSettleDelay = 500 * time.Millisecond

// Fetcher retrieves rendered HTML using a headless Chrome browser.
// Safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	settle   time.Duration
	closed   atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithSettleDelay overrides the post-load settle delay.
func WithSettleDelay(d time.Duration) Option {
	return func(f *Fetcher) { f.settle = d }
}

// NewFetcher launches a headless Chrome browser. Close must be called
// when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f := &Fetcher{
		browser:  browser,
		launcher: l,
		settle:   DefaultSettleDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch navigates to the URL, waits for rendering to finish, and
// returns the resulting HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", randoqa.Errorf(randoqa.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	// Single-page-app routes sometimes never fire the load event; fall
	// back to waiting for the network to go quiet.
	if err := page.WaitLoad(); err != nil {
		wait := page.WaitRequestIdle(500*time.Millisecond, nil, nil, nil)
		wait()
	}

	if f.settle > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.settle):
		}
	}

	return page.HTML()
}

// Close releases browser resources. Safe to call multiple times.
func (f *Fetcher) Close() error {
	if f.closed.Swap(true) {
		return nil
	}
	err := f.browser.Close()
	f.launcher.Kill()
	return err
}
