package cache

import (
	"hash/maphash"
	"sync"
	"sync/atomic"

	"github.com/gogpu/vpath"
)

// Default configuration constants.
const (
	// ShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	ShardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 64

	shardMask = ShardCount - 1
)

// Stats holds cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries per shard.
	Capacity int
	// TotalCapacity is the capacity across all shards.
	TotalCapacity int
	// Hits is the number of lookups served from the cache.
	Hits uint64
	// Misses is the number of lookups that built a new path.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0 when nothing was looked up.
	HitRate float64
	// Evictions is the number of entries dropped to respect the capacity.
	Evictions uint64
}

// Shapes is a sharded LRU cache of generated paths keyed by K.
type Shapes[K comparable] struct {
	shards   [ShardCount]*shard[K]
	seed     maphash.Seed
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable] struct {
	mu      sync.Mutex
	entries map[K]*lruNode[K]
	lru     lruList[K]
}

// New creates a cache holding at most capacity paths per shard.
// If capacity <= 0, DefaultCapacity is used.
func New[K comparable](capacity int) *Shapes[K] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Shapes[K]{
		seed:     maphash.MakeSeed(),
		capacity: capacity,
	}
	for i := range c.shards {
		c.shards[i] = &shard[K]{entries: make(map[K]*lruNode[K])}
	}
	return c
}

func (c *Shapes[K]) shard(key K) *shard[K] {
	return c.shards[maphash.Comparable(c.seed, key)&shardMask]
}

// GetOrBuild returns a copy of the path cached under key. On a miss, build
// is called with an empty path to generate the geometry, which is then
// cached. build runs with the shard locked and must not use the cache.
//
// The returned path shares storage with the cached one; mutating it
// detaches it without affecting the cache. Call Release on it when done.
func (c *Shapes[K]) GetOrBuild(key K, build func(p *vpath.Path)) *vpath.Path {
	s := c.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if node, ok := s.entries[key]; ok {
		s.lru.moveToFront(node)
		c.hits.Add(1)
		return node.path.Copy()
	}
	c.misses.Add(1)

	p := vpath.NewPath()
	build(p)

	for s.lru.len >= c.capacity {
		oldest := s.lru.removeOldest()
		delete(s.entries, oldest.key)
		oldest.path.Release()
		c.evictions.Add(1)
	}

	node := &lruNode[K]{key: key, path: p}
	s.lru.pushFront(node)
	s.entries[key] = node

	vpath.Logger().Debug("cache: built shape", "elements", len(p.Elements()), "shard_len", s.lru.len)
	return p.Copy()
}

// Get returns a copy of the path cached under key.
func (c *Shapes[K]) Get(key K) (*vpath.Path, bool) {
	s := c.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	node, ok := s.entries[key]
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	s.lru.moveToFront(node)
	c.hits.Add(1)
	return node.path.Copy(), true
}

// Delete removes the entry for key. Copies handed out earlier stay valid.
// Returns true if the entry was found and removed.
func (c *Shapes[K]) Delete(key K) bool {
	s := c.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	node, ok := s.entries[key]
	if !ok {
		return false
	}
	s.lru.unlink(node)
	delete(s.entries, key)
	node.path.Release()
	return true
}

// Clear removes all entries.
func (c *Shapes[K]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		for _, node := range s.entries {
			node.path.Release()
		}
		s.entries = make(map[K]*lruNode[K])
		s.lru = lruList[K]{}
		s.mu.Unlock()
	}
}

// Len returns the total number of entries across all shards.
func (c *Shapes[K]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Stats returns current cache statistics.
func (c *Shapes[K]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:           c.Len(),
		Capacity:      c.capacity,
		TotalCapacity: c.capacity * ShardCount,
		Hits:          hits,
		Misses:        misses,
		HitRate:       hitRate,
		Evictions:     c.evictions.Load(),
	}
}
