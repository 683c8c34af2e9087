package noise

import "sync"

// Table is a 512-entry gradient permutation table: a seeded shuffle of
// [0,255] repeated twice so corner lookups never need a wrap check. It is
// never mutated after construction and is safe to share across goroutines.
type Table [512]uint8

// NewTable builds the permutation table for a canonical seed by running a
// Fisher-Yates shuffle over the identity permutation, driven by Mulberry32.
func NewTable(seed uint32) *Table {
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	rng := NewRng(seed)
	for i := 255; i > 0; i-- {
		j := int(rng.Float() * float64(i+1))
		p[i], p[j] = p[j], p[i]
	}
	t := &Table{}
	copy(t[:256], p[:])
	copy(t[256:], p[:])
	return t
}

// TableCache memoizes permutation tables by canonical seed with a fixed
// capacity and least-recently-used eviction. Writes happen once per seed and
// reads dominate, so lookups take only the read lock.
type TableCache struct {
	mu       sync.RWMutex
	capacity int
	tables   map[uint32]*Table
	order    []uint32 // least recently used first
}

// DefaultCacheCapacity bounds the package-level convenience cache.
const DefaultCacheCapacity = 64

// NewTableCache creates a cache holding at most capacity tables.
func NewTableCache(capacity int) *TableCache {
	if capacity < 1 {
		capacity = 1
	}
	return &TableCache{
		capacity: capacity,
		tables:   make(map[uint32]*Table, capacity),
	}
}

// Get returns the table for seed, building and caching it on first use.
func (c *TableCache) Get(seed uint32) *Table {
	c.mu.RLock()
	t, ok := c.tables[seed]
	c.mu.RUnlock()
	if ok {
		c.touch(seed)
		return t
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.tables[seed]; ok {
		return t
	}
	t = NewTable(seed)
	if len(c.tables) >= c.capacity {
		evict := c.order[0]
		c.order = c.order[1:]
		delete(c.tables, evict)
	}
	c.tables[seed] = t
	c.order = append(c.order, seed)
	return t
}

// Len reports how many tables are currently cached.
func (c *TableCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tables)
}

func (c *TableCache) touch(seed uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, s := range c.order {
		if s == seed {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, seed)
			return
		}
	}
}

var defaultCache = NewTableCache(DefaultCacheCapacity)

// TableFor resolves a table through the package-level cache.
func TableFor(seed uint32) *Table {
	return defaultCache.Get(seed)
}
