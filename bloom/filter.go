// Package bloom tracks already-visited URLs with a Bloom filter.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter records URLs seen during a crawl. A false positive means a
// URL may be skipped even though it was never fetched; false negatives
// cannot occur.
type Filter struct {
	bf *bloom.BloomFilter
}

// NewFilter sizes the filter for n expected URLs at the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{bf: bloom.NewWithEstimates(n, fpRate)}
}

// Add marks a URL as seen.
func (f *Filter) Add(url string) {
	f.bf.AddString(url)
}

// Test reports whether a URL has possibly been seen.
func (f *Filter) Test(url string) bool {
	return f.bf.TestString(url)
}

// EstimatedCount approximates the number of URLs added so far.
func (f *Filter) EstimatedCount() uint {
	return uint(f.bf.ApproximatedSize())
}
