package cache

import (
	"container/list"
	"context"
	"sync"
)

// MemoryCache is an in-process LRU cache bounded to a fixed number of
// entries. When full, the least recently used entry is evicted. The size
// invariant (len <= capacity) holds at all times.
type MemoryCache struct {
	capacity int

	mu       sync.Mutex
	order    *list.List // front = most recently used
	entries  map[string]*list.Element
	inflight map[string]*call
}

type memoryEntry struct {
	key   string
	value []byte
}

// call tracks one in-flight compute so concurrent requests for the same key
// share a single computation.
type call struct {
	done  chan struct{}
	value []byte
	err   error
}

// NewMemoryCache creates a MemoryCache holding at most capacity entries.
func NewMemoryCache(capacity int) *MemoryCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &MemoryCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element),
		inflight: make(map[string]*call),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*memoryEntry).value, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
	return nil
}

// set inserts or refreshes an entry. Caller holds c.mu.
func (c *MemoryCache) set(key string, value []byte) {
	if elem, ok := c.entries[key]; ok {
		elem.Value.(*memoryEntry).value = value
		c.order.MoveToFront(elem)
		return
	}
	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*memoryEntry).key)
		}
	}
	c.entries[key] = c.order.PushFront(&memoryEntry{key: key, value: value})
}

// GetOrCompute returns the cached value or computes it, with at most one
// compute in flight per key.
func (c *MemoryCache) GetOrCompute(ctx context.Context, key string, compute ComputeFunc) ([]byte, error) {
	c.mu.Lock()
	if elem, ok := c.entries[key]; ok {
		c.order.MoveToFront(elem)
		value := elem.Value.(*memoryEntry).value
		c.mu.Unlock()
		return value, nil
	}
	if cl, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		select {
		case <-cl.done:
			return cl.value, cl.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	cl := &call{done: make(chan struct{})}
	c.inflight[key] = cl
	c.mu.Unlock()

	cl.value, cl.err = compute(ctx)

	c.mu.Lock()
	delete(c.inflight, key)
	if cl.err == nil {
		c.set(key, cl.value)
	}
	c.mu.Unlock()
	close(cl.done)

	return cl.value, cl.err
}

// Len reports the current entry count.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

var _ Cache = (*MemoryCache)(nil)
