package status

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// Counters is a registry of named match counters
// Registration takes the lock; cached pointers are updated lock-free
type Counters struct {
	mu    sync.RWMutex
	items map[string]*atomic.Int64
}

// NewCounters creates an empty registry
func NewCounters() *Counters {
	return &Counters{items: make(map[string]*atomic.Int64)}
}

// Get returns the counter for key, creating it on first use
func (c *Counters) Get(key string) *atomic.Int64 {
	c.mu.RLock()
	if ptr, ok := c.items[key]; ok {
		c.mu.RUnlock()
		return ptr
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if ptr, ok := c.items[key]; ok {
		return ptr
	}
	ptr := new(atomic.Int64)
	c.items[key] = ptr
	return ptr
}

// Inc adds one to a counter
func (c *Counters) Inc(key string) {
	c.Get(key).Add(1)
}

// Value reads a counter; unknown keys read zero
func (c *Counters) Value(key string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if ptr, ok := c.items[key]; ok {
		return ptr.Load()
	}
	return 0
}

// Range visits counters in sorted key order
func (c *Counters) Range(fn func(key string, value int64)) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fn(k, c.items[k].Load())
	}
}

// Reset zeroes every counter, keeping cached pointers valid
func (c *Counters) Reset() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, ptr := range c.items {
		ptr.Store(0)
	}
}

// Summary formats non-zero counters as key=value pairs
func (c *Counters) Summary() string {
	var parts []string
	c.Range(func(key string, value int64) {
		if value != 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", key, value))
		}
	})
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
