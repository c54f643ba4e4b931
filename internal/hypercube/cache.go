package hypercube

import (
	"sync"

	"hypercube-renderer/internal/mathutil"
)

// Geometry is the vertex and edge set of one hypercube. Shared between
// callers; treat as read-only.
type Geometry struct {
	Dims     int
	Vertices []mathutil.Point
	Edges    []Edge
}

// Cache is a concurrency-safe geometry cache keyed by dimension count.
type Cache struct {
	mu    sync.RWMutex
	items map[int]*Geometry
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{items: make(map[int]*Geometry)}
}

// Get returns the geometry for dims, generating it on first use.
func (c *Cache) Get(dims int) (*Geometry, error) {
	// Fast path: read lock
	c.mu.RLock()
	if g, ok := c.items[dims]; ok {
		c.mu.RUnlock()
		return g, nil
	}
	c.mu.RUnlock()

	// Slow path: generate outside the lock
	verts, err := Vertices(dims)
	if err != nil {
		return nil, err
	}
	edges, err := Edges(dims)
	if err != nil {
		return nil, err
	}
	g := &Geometry{Dims: dims, Vertices: verts, Edges: edges}

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.items[dims]; ok {
		return existing, nil
	}
	c.items[dims] = g
	return g, nil
}

// Len returns the number of cached dimensions.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
