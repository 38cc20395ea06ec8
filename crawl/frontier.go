package crawl

import (
	"sync"

	"github.com/mbonnet/randoqa"
	"github.com/mbonnet/randoqa/bloom"
)

// Entry is a URL queued for crawling together with its distance from
// the start page.
type Entry struct {
	URL   string
	Depth int
}

// Frontier is the crawl worklist. It pops in LIFO order so the crawl
// explores depth-first, and deduplicates URLs with a Bloom filter so a
// page is fetched at most once per crawl. Safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	stack []Entry
}

// NewFrontier creates a Frontier sized for n expected URLs with the
// given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{seen: bloom.NewFilter(n, fpRate)}
}

// Push queues a URL unless it has already been seen. URLs are
// normalized before deduplication, so variants differing only in
// fragment or trailing slash count as one visit.
func (f *Frontier) Push(e Entry) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	e.URL = randoqa.NormalizeURL(e.URL)
	if f.seen.Test(e.URL) {
		return false
	}
	f.seen.Add(e.URL)
	f.stack = append(f.stack, e)
	return true
}

// Pop removes and returns the most recently pushed entry.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (Entry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.stack) == 0 {
		return Entry{}, false
	}
	e := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	return e, true
}

// Len returns the number of queued entries.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.stack)
}

// Seen reports whether the URL has been queued or visited this crawl.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(randoqa.NormalizeURL(rawURL))
}
