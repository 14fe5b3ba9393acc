package engine

import (
	"sync"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/alexanderramin/horizon/internal/domain"
)

// Cache memoizes estimate computations keyed by a hash of the full
// input snapshot. It is advisory only: entries may be evicted at any
// time, a nil cache is fully supported, and correctness never depends on
// its presence. Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[uint64][]domain.DayEstimate
}

func NewCache() *Cache {
	return &Cache{entries: make(map[uint64][]domain.DayEstimate)}
}

// ComputeDayEstimatesCached computes via the cache when possible. The
// returned slice is always a private copy, so callers may modify it
// without corrupting cached entries.
func ComputeDayEstimatesCached(in Input, cache *Cache) []domain.DayEstimate {
	if cache == nil {
		return ComputeDayEstimates(in)
	}

	key, err := hashstructure.Hash(in, hashstructure.FormatV2, nil)
	if err != nil {
		return ComputeDayEstimates(in)
	}

	cache.mu.Lock()
	cached, ok := cache.entries[key]
	cache.mu.Unlock()
	if ok {
		return cloneEstimates(cached)
	}

	estimates := ComputeDayEstimates(in)

	cache.mu.Lock()
	cache.entries[key] = cloneEstimates(estimates)
	cache.mu.Unlock()

	return estimates
}

func cloneEstimates(estimates []domain.DayEstimate) []domain.DayEstimate {
	out := make([]domain.DayEstimate, len(estimates))
	copy(out, estimates)
	return out
}
