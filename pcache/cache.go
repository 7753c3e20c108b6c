package pcache

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

// PCache is a process-level cache for expensive parse results, keyed by the
// exact input text. Entries are evictable at any time under cost pressure;
// callers must treat a miss as "recompute", never as an error.
type PCache struct {
	Cache *ristretto.Cache
}

// NewPCache creates a new instance of PCache
// https://pkg.go.dev/github.com/dgraph-io/ristretto#Config
func NewPCache(maxCost int64, averageItemCost int64) (PCache, error) {
	expectedMaxItems := maxCost / averageItemCost
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * expectedMaxItems,
		MaxCost:     maxCost,
		BufferItems: 1 << 6,
		Metrics:     true,
	})
	if err != nil {
		return PCache{}, err
	}
	return PCache{
		Cache: cache,
	}, nil
}

func (pc *PCache) Set(key, value interface{}, cost int64) bool {
	return pc.Cache.Set(key, value, cost)
}

func (pc *PCache) SetWithTTL(key, value interface{}, cost int64, ttl time.Duration) bool {
	pc.Cache.SetWithTTL(key, value, cost, ttl)
	return true
}

func (pc *PCache) Get(key interface{}) (interface{}, bool) {
	return pc.Cache.Get(key)
}

func (pc *PCache) GetTTL(key interface{}) (time.Duration, bool) {
	return pc.Cache.GetTTL(key)
}

// Wait blocks until buffered sets have been applied. Only needed when a
// caller must observe its own writes, e.g. in tests.
func (pc *PCache) Wait() {
	pc.Cache.Wait()
}

// Clear drops every entry. Outstanding parses racing with Clear may
// repopulate the cache; that is fine, values for one key are value-equal.
func (pc *PCache) Clear() {
	pc.Cache.Clear()
}
