package hypercube

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheReusesGeometry(t *testing.T) {
	c := NewCache()
	a, err := c.Get(5)
	require.NoError(t, err)
	b, err := c.Get(5)
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Len(t, a.Vertices, 32)
	assert.Len(t, a.Edges, 80)
	assert.Equal(t, 1, c.Len())
}

func TestCacheConcurrentGet(t *testing.T) {
	c := NewCache()
	got := make([]*Geometry, 16)

	var wg sync.WaitGroup
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			g, err := c.Get(3 + i%3)
			assert.NoError(t, err)
			got[i] = g
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 3, c.Len())
	for i := range got {
		assert.Same(t, got[i%3], got[i])
	}
}

func TestCacheRejectsBadDims(t *testing.T) {
	c := NewCache()
	_, err := c.Get(-2)
	assert.ErrorIs(t, err, ErrNegativeDimensions)
	assert.Equal(t, 0, c.Len())
}
