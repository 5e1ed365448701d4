package pathfind

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"

	"encounters/pkg/engine/world"
)

// RangeCache memoizes range queries for one map generation. Terrain never
// changes after generation, so a result stays valid until the map is replaced.
type RangeCache struct {
	m     *world.Map
	cache *ristretto.Cache[string, *RangeFinder]
}

// NewRangeCache creates a cache that holds up to maxEntries range results for m
func NewRangeCache(m *world.Map, maxEntries int64) (*RangeCache, error) {
	if maxEntries <= 0 {
		maxEntries = 256
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, *RangeFinder]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("creating range cache: %w", err)
	}
	return &RangeCache{m: m, cache: cache}, nil
}

func rangeKey(anchor world.Point, maxCost uint32) string {
	return fmt.Sprintf("%d|%d|%d", anchor.X, anchor.Y, maxCost)
}

// Compute returns the range result for anchor and maxCost, running the search
// only on a miss. Callers must not mutate the returned finder.
func (c *RangeCache) Compute(anchor world.Point, maxCost uint32) *RangeFinder {
	key := rangeKey(anchor, maxCost)
	if r, ok := c.cache.Get(key); ok {
		return r
	}

	r := ComputeRange(anchor, maxCost, c.m)
	c.cache.Set(key, r, 1)
	c.cache.Wait()
	return r
}

// Map returns the map the cache was built for
func (c *RangeCache) Map() *world.Map {
	return c.m
}

// Reset drops every cached result and points the cache at a new map
func (c *RangeCache) Reset(m *world.Map) {
	c.cache.Clear()
	c.m = m
}

// Close releases the cache's background goroutines
func (c *RangeCache) Close() {
	c.cache.Close()
}
