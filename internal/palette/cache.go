package palette

import (
	"sync"

	"github.com/jmylchreest/shade/internal/colour"
)

// Cache stores generated palettes keyed by normalised seed.
type Cache interface {
	Get(seed string) (Pair, bool)
	Put(seed string, p Pair)
}

// MemoryCache is an in-process Cache safe for concurrent use.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]Pair
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]Pair)}
}

// Get returns the cached pair for seed.
func (c *MemoryCache) Get(seed string) (Pair, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.entries[seed]
	return p, ok
}

// Put stores p under seed.
func (c *MemoryCache) Put(seed string, p Pair) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[seed] = p
}

// Len returns the number of cached seeds.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Generator wraps Generate with an optional cache.
type Generator struct {
	cache Cache
}

// NewGenerator returns a Generator backed by cache. A nil cache disables memoisation.
func NewGenerator(cache Cache) *Generator {
	return &Generator{cache: cache}
}

// Generate returns the palette pair for seed, consulting the cache first.
// Seeds are normalised so "#3b82f6" and "3B82F6" share an entry.
func (g *Generator) Generate(seed string) Pair {
	key := colour.NormalizeHex(seed)
	if g.cache == nil {
		return Generate(key)
	}
	if p, ok := g.cache.Get(key); ok {
		return p
	}
	p := Generate(key)
	g.cache.Put(key, p)
	return p
}
