package tabular

import (
	"context"
	"log"
	"os"
	"sync"

	"goattrition/domain/core"
	"goattrition/domain/table"
	"goattrition/ports"
)

// CachingLoader memoizes dataset loads keyed by source path and content
// hash. A changed file misses the cache automatically; Invalidate drops an
// entry by hand. There is no eviction: sources are static for the process
// lifetime and the cache holds one dataset per configured source.
type CachingLoader struct {
	loader ports.Loader

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	hash core.ContentHash
	ds   *table.Dataset
}

// NewCachingLoader wraps a loader with content-hash memoization
func NewCachingLoader(loader ports.Loader) *CachingLoader {
	return &CachingLoader{
		loader:  loader,
		entries: make(map[string]cacheEntry),
	}
}

// Load returns the cached dataset when the source bytes are unchanged,
// otherwise delegates to the wrapped loader and stores the result.
func (c *CachingLoader) Load(ctx context.Context, source string) (*table.Dataset, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, core.NewLoadError(source, err)
	}
	hash := core.NewContentHash(data)

	c.mu.RLock()
	entry, ok := c.entries[source]
	c.mu.RUnlock()
	if ok && entry.hash == hash {
		return entry.ds, nil
	}

	ds, err := c.loader.Load(ctx, source)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[source] = cacheEntry{hash: hash, ds: ds}
	c.mu.Unlock()

	if ok {
		log.Printf("[CachingLoader] Source %s changed, cache entry replaced", source)
	}
	return ds, nil
}

// Invalidate drops the cache entry for a source
func (c *CachingLoader) Invalidate(source string) {
	c.mu.Lock()
	delete(c.entries, source)
	c.mu.Unlock()
}
