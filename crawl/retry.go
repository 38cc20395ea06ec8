package crawl

import (
	"context"
	"log/slog"
	"time"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

const (
	// DefaultMaxAttempts is the total number of fetch attempts per URL.
	DefaultMaxAttempts = 3

	backoffBase = 2 * time.Second
	backoffCap  = 10 * time.Second
)

// Backoff returns the delay before retry number attempt (1-based).
// Delays double from two seconds and are capped at ten seconds.
func Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := backoffBase << (attempt - 1)
	if d > backoffCap || d <= 0 {
		return backoffCap
	}
	return d
}

// FetchWithRetry attempts a fetch up to maxAttempts times, sleeping
// Backoff(n) between attempts. It returns the last error once attempts
// are exhausted, or the context error if canceled while waiting.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger, maxAttempts int) (string, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	delays := make([]time.Duration, maxAttempts-1)
	for i := range delays {
		delays[i] = Backoff(i + 1)
	}
	return FetchWithRetryDelays(ctx, url, fetch, logger, delays)
}

// FetchWithRetryDelays is like FetchWithRetry but with explicit delays
// between attempts, useful in tests. The total number of attempts is
// len(delays)+1.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger, delays []time.Duration) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt == len(delays) {
			break
		}

		if logger != nil {
			logger.Warn("fetch failed, retrying",
				slog.String("url", url),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", delays[attempt]),
				slog.String("error", err.Error()))
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
