// Package mock provides function-field mocks of the domain interfaces.
package mock

import (
	"context"

	"github.com/mbonnet/randoqa"
)

var _ randoqa.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of randoqa.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ randoqa.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of randoqa.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.WaitFn == nil {
		return nil
	}
	return d.WaitFn(ctx, domain)
}
