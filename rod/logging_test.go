package rod_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/mbonnet/randoqa/mock"
	"github.com/mbonnet/randoqa/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_LogsFetches(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	inner := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return "<html>ok</html>", nil
		},
	}

	f := rod.NewLoggingFetcher(inner, logger)
	html, err := f.Fetch(context.Background(), "https://hiking-gallery.vercel.app/2024")
	require.NoError(t, err)
	assert.Equal(t, "<html>ok</html>", html)

	out := buf.String()
	assert.Contains(t, out, "fetch")
	assert.Contains(t, out, "https://hiking-gallery.vercel.app/2024")
	assert.Contains(t, out, "bytes=14")
}

func TestLoggingFetcher_CloseDelegates(t *testing.T) {
	t.Parallel()

	closed := false
	inner := &mock.Fetcher{
		CloseFn: func() error {
			closed = true
			return nil
		},
	}

	f := rod.NewLoggingFetcher(inner, slog.New(slog.DiscardHandler))
	require.NoError(t, f.Close())
	assert.True(t, closed)
}
