package services

import (
	"log"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// PageCache caches rendered/serialized responses for the public routes and
// carries the "this content changed" signal after admin mutations: mutation
// handlers invalidate the affected routes, so the next public read rebuilds
// from the stores.
type PageCache struct {
	cache *gocache.Cache
}

// NewPageCache creates a page cache with the given entry TTL.
func NewPageCache(ttl time.Duration) *PageCache {
	if ttl == 0 {
		ttl = 5 * time.Minute
	}
	return &PageCache{
		cache: gocache.New(ttl, 10*time.Minute),
	}
}

// Get returns the cached value for a route, if present.
func (p *PageCache) Get(route string) (interface{}, bool) {
	return p.cache.Get(route)
}

// Set stores a value for a route with the default TTL.
func (p *PageCache) Set(route string, value interface{}) {
	p.cache.Set(route, value, gocache.DefaultExpiration)
}

// Invalidate marks the given routes stale after a mutation.
func (p *PageCache) Invalidate(routes ...string) {
	for _, route := range routes {
		p.cache.Delete(route)
	}
	if m := GetMetrics(); m != nil {
		m.CacheInvalidations.Add(float64(len(routes)))
	}
	log.Printf("♻️  Invalidated routes: %v", routes)
}

// Flush drops every cached route.
func (p *PageCache) Flush() {
	p.cache.Flush()
}
