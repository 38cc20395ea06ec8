package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/mbonnet/randoqa/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_SpacesRequestsToSameDomain(t *testing.T) {
	t.Parallel()

	limiter := crawl.NewDomainLimiter(20) // 50ms between requests

	ctx := context.Background()
	start := time.Now()
	require.NoError(t, limiter.Wait(ctx, "hiking-gallery.vercel.app"))
	require.NoError(t, limiter.Wait(ctx, "hiking-gallery.vercel.app"))
	require.NoError(t, limiter.Wait(ctx, "hiking-gallery.vercel.app"))

	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestDomainLimiter_DomainsAreIndependent(t *testing.T) {
	t.Parallel()

	limiter := crawl.NewDomainLimiter(10)

	ctx := context.Background()
	start := time.Now()
	require.NoError(t, limiter.Wait(ctx, "a.example.com"))
	require.NoError(t, limiter.Wait(ctx, "b.example.com"))
	require.NoError(t, limiter.Wait(ctx, "c.example.com"))

	// First request to each domain consumes the initial token.
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestDomainLimiter_ContextCancellation(t *testing.T) {
	t.Parallel()

	limiter := crawl.NewDomainLimiter(0.1) // 10s between requests

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.NoError(t, limiter.Wait(ctx, "hiking-gallery.vercel.app"))
	err := limiter.Wait(ctx, "hiking-gallery.vercel.app")
	require.Error(t, err)
}
