package moire

import (
	"container/list"
	"sync"
)

// cacheKey identifies one parameter set. Defaults are applied before keying,
// so an explicit Params{Tolerance: 1e-6} and a zero-valued one share an entry.
type cacheKey struct {
	side       float64
	angle      float64
	axis       [3]float64
	maxDist    int
	maxDir     int
	goldenTol  float64
	specialTol float64
	tolerance  float64
}

func keyFor(p Params) cacheKey {
	p = p.withDefaults()
	return cacheKey{
		side:       p.SideLength,
		angle:      p.RotationAngleDegrees,
		axis:       [3]float64{p.RotationAxis.X(), p.RotationAxis.Y(), p.RotationAxis.Z()},
		maxDist:    p.MaxDistancePairs,
		maxDir:     p.MaxDirectionPairs,
		goldenTol:  p.GoldenRatioTolerance,
		specialTol: p.SpecialAngleTolerance,
		tolerance:  p.Tolerance,
	}
}

type cacheEntry struct {
	key    cacheKey
	result *Result
}

// ResultCache memoizes analysis results by parameter key with LRU eviction.
// The engine itself stays stateless; callers that replay parameter sets (a
// request layer, a sweep driver revisiting angles) own one of these instead.
// Safe for concurrent use.
type ResultCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[cacheKey]*list.Element
	order    *list.List // front = most recently used
}

// NewResultCache creates a cache holding at most capacity results.
// A capacity below 1 is raised to 1.
func NewResultCache(capacity int) *ResultCache {
	capacity = max(1, capacity)

	return &ResultCache{
		capacity: capacity,
		entries:  make(map[cacheKey]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get returns the cached result for the parameter set, if present, and marks
// it most recently used.
func (c *ResultCache) Get(p Params) (*Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	element, ok := c.entries[keyFor(p)]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(element)

	return element.Value.(*cacheEntry).result, true
}

// Analyze returns the cached result for the parameter set or computes, stores
// and returns it. Errors are never cached; a failing parameter set fails
// again on every call.
func (c *ResultCache) Analyze(p Params) (*Result, error) {
	if result, ok := c.Get(p); ok {
		return result, nil
	}

	result, err := Analyze(p)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := keyFor(p)
	if element, ok := c.entries[key]; ok {
		// Concurrent caller stored it first, keep its entry canonical
		c.order.MoveToFront(element)
		return element.Value.(*cacheEntry).result, nil
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, result: result})
	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}

	return result, nil
}

// Len returns the number of cached results.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}
