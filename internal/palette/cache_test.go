package palette

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingCache struct {
	*MemoryCache
	hits, misses int
}

func (c *countingCache) Get(seed string) (Pair, bool) {
	p, ok := c.MemoryCache.Get(seed)
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return p, ok
}

func TestGeneratorUsesCache(t *testing.T) {
	cache := &countingCache{MemoryCache: NewMemoryCache()}
	g := NewGenerator(cache)

	first := g.Generate("#3b82f6")
	second := g.Generate("3B82F6")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.misses)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, Generate("#3B82F6"), first)
}

func TestGeneratorWithoutCache(t *testing.T) {
	g := NewGenerator(nil)
	assert.Equal(t, Generate("#22C55E"), g.Generate("#22C55E"))
}

func TestMemoryCacheConcurrentUse(t *testing.T) {
	g := NewGenerator(NewMemoryCache())

	var wg sync.WaitGroup
	for _, p := range Presets() {
		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, Generate(p.Seed), g.Generate(p.Seed))
			}()
		}
	}
	wg.Wait()
}
