package blockart

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"sync/atomic"
)

// RenderCache provides thread-safe caching of rendered art for long-running
// applications that redraw the same tiny bitmaps, such as the demo loop.
// The cache uses a simple LRU eviction policy when the maximum size is
// reached.
//
// Key Generation Strategy:
// - The key is the SHA256 hash of the newline-joined bitmap rows, so
//   identical bitmaps share one entry regardless of how they were built.
//
// LRU Policy:
// - Every cache hit moves the entry to the front of the LRU list
// - When the cache is full, the tail (least recently used) entry is evicted
type RenderCache struct {
	mu        sync.RWMutex
	arts      map[string]*cacheEntry
	lru       *lruList
	maxSize   int
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type cacheEntry struct {
	key     string
	art     string
	lruNode *lruNode
}

type lruNode struct {
	key  string
	prev *lruNode
	next *lruNode
}

type lruList struct {
	head *lruNode
	tail *lruNode
	size int
}

// Global default cache for convenience
var defaultCache = NewRenderCache(100)

// NewRenderCache creates a new render cache holding at most maxSize entries.
// A maxSize of 0 or negative means unlimited cache size.
func NewRenderCache(maxSize int) *RenderCache {
	return &RenderCache{
		arts:    make(map[string]*cacheEntry),
		lru:     &lruList{},
		maxSize: maxSize,
	}
}

// RenderCached renders the bitmap using the default cache.
// This function is safe for concurrent use.
func RenderCached(rows []string) (string, error) {
	return defaultCache.Render(rows)
}

// Render renders the bitmap, returning the cached art when the same bitmap
// has been rendered before. This method is safe for concurrent use.
func (c *RenderCache) Render(rows []string) (string, error) {
	hash := sha256.Sum256([]byte(strings.Join(rows, "\n")))
	key := hex.EncodeToString(hash[:])

	if art, ok := c.get(key); ok {
		return art, nil
	}

	art, err := Render(rows)
	if err != nil {
		c.misses.Add(1)
		return "", err
	}

	c.put(key, art)
	return art, nil
}

// get retrieves an entry using two-phase locking: an RLock for the
// existence check so hits do not serialize, then a full Lock only to move
// the entry to the front of the LRU list.
func (c *RenderCache) get(key string) (string, bool) {
	c.mu.RLock()
	entry, exists := c.arts[key]
	c.mu.RUnlock()

	if !exists {
		c.misses.Add(1)
		return "", false
	}

	// Update LRU position
	c.mu.Lock()
	c.lru.moveToFront(entry.lruNode)
	c.mu.Unlock()

	c.hits.Add(1)
	return entry.art, true
}

// put adds an entry to the cache, evicting the least recently used entry
// when the cache is at capacity.
func (c *RenderCache) put(key, art string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.arts[key]; exists {
		return
	}

	if c.maxSize > 0 && len(c.arts) >= c.maxSize {
		c.evictLRU()
	}

	node := c.lru.pushFront(key)
	c.arts[key] = &cacheEntry{
		key:     key,
		art:     art,
		lruNode: node,
	}
}

// evictLRU removes the least recently used entry from the cache
func (c *RenderCache) evictLRU() {
	if c.lru.tail == nil {
		return
	}

	key := c.lru.tail.key
	delete(c.arts, key)
	c.lru.remove(c.lru.tail)
	c.evictions.Add(1)
}

// Clear removes all entries from the cache.
// This method is safe for concurrent use.
func (c *RenderCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.arts = make(map[string]*cacheEntry)
	c.lru = &lruList{}
}

// Stats returns cache statistics.
// This method is safe for concurrent use.
func (c *RenderCache) Stats() CacheStats {
	c.mu.RLock()
	size := len(c.arts)
	c.mu.RUnlock()

	return CacheStats{
		Size:      size,
		MaxSize:   c.maxSize,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// CacheStats contains cache performance statistics
type CacheStats struct {
	Size      int    // Current number of cached renderings
	MaxSize   int    // Maximum cache size
	Hits      uint64 // Number of cache hits
	Misses    uint64 // Number of cache misses
	Evictions uint64 // Number of evictions
}

// HitRate returns the cache hit rate as a percentage (0-100)
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) * 100 / float64(total)
}

// LRU list operations
func (l *lruList) pushFront(key string) *lruNode {
	node := &lruNode{key: key}

	if l.head == nil {
		l.head = node
		l.tail = node
	} else {
		node.next = l.head
		l.head.prev = node
		l.head = node
	}

	l.size++
	return node
}

func (l *lruList) moveToFront(node *lruNode) {
	if node == l.head {
		return
	}

	// Remove from current position
	if node.prev != nil {
		node.prev.next = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	}
	if node == l.tail {
		l.tail = node.prev
	}

	// Move to front
	node.prev = nil
	node.next = l.head
	l.head.prev = node
	l.head = node
}

func (l *lruList) remove(node *lruNode) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}

	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}

	l.size--
}

// SetDefaultCacheSize sets the maximum size of the default cache.
// This should be called once at application startup.
func SetDefaultCacheSize(maxSize int) {
	defaultCache = NewRenderCache(maxSize)
}

// ClearDefaultCache clears the default render cache.
func ClearDefaultCache() {
	defaultCache.Clear()
}

// DefaultCacheStats returns statistics for the default cache.
func DefaultCacheStats() CacheStats {
	return defaultCache.Stats()
}
