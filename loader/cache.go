package loader

import (
	"image"
	"sync"
	"sync/atomic"
)

// DefaultCacheBytes is the default decoded-image budget of a Loader.
const DefaultCacheBytes = 64 << 20

// CacheStats is a snapshot of cache counters.
type CacheStats struct {
	Len       int
	Bytes     int64
	MaxBytes  int64
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// imageCache is a thread-safe LRU of decoded images bounded by the
// estimated size of their pixel buffers rather than by entry count.
// A single image larger than the budget is not cached.
type imageCache struct {
	mu       sync.Mutex
	entries  map[string]*cacheNode
	head     *cacheNode // most recently used
	tail     *cacheNode // least recently used
	bytes    int64
	maxBytes int64

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// cacheNode is both the map value and the LRU list node.
type cacheNode struct {
	key        string
	img        image.Image
	size       int64
	prev, next *cacheNode
}

func newImageCache(maxBytes int64) *imageCache {
	return &imageCache{
		entries:  make(map[string]*cacheNode),
		maxBytes: maxBytes,
	}
}

// get returns the cached image and marks it most recently used.
func (c *imageCache) get(key string) (image.Image, bool) {
	c.mu.Lock()
	n, ok := c.entries[key]
	if ok {
		c.moveToFront(n)
	}
	c.mu.Unlock()

	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return n.img, true
}

// peek returns the cached image without touching recency or counters.
func (c *imageCache) peek(key string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n, ok := c.entries[key]; ok {
		return n.img, true
	}
	return nil, false
}

// set stores img, evicting least recently used images until the budget
// holds. It reports whether the image was cached.
func (c *imageCache) set(key string, img image.Image) bool {
	size := imageBytes(img)
	if size > c.maxBytes {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		c.bytes += size - n.size
		n.img, n.size = img, size
		c.moveToFront(n)
	} else {
		n := &cacheNode{key: key, img: img, size: size}
		c.entries[key] = n
		c.pushFront(n)
		c.bytes += size
	}

	for c.bytes > c.maxBytes && c.tail != nil {
		old := c.tail
		c.unlink(old)
		delete(c.entries, old.key)
		c.bytes -= old.size
		c.evictions.Add(1)
	}
	return true
}

func (c *imageCache) stats() CacheStats {
	c.mu.Lock()
	n, b := len(c.entries), c.bytes
	c.mu.Unlock()

	return CacheStats{
		Len:       n,
		Bytes:     b,
		MaxBytes:  c.maxBytes,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

func (c *imageCache) pushFront(n *cacheNode) {
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

func (c *imageCache) moveToFront(n *cacheNode) {
	if n == c.head {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}

func (c *imageCache) unlink(n *cacheNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
}
