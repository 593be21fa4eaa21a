package cache

import (
	"sync"
	"time"
)

// memoryEntry holds a cached value with its timestamp.
type memoryEntry struct {
	value     string
	timestamp time.Time
}

// MemoryStore is a thread-safe in-memory cache with TTL support.
type MemoryStore struct {
	cache map[string]memoryEntry
	mu    sync.RWMutex
	ttl   time.Duration
}

// NewMemoryStore creates a new in-memory cache with the specified TTL.
// If ttlSeconds is 0 or negative, entries never expire.
func NewMemoryStore(ttlSeconds int) *MemoryStore {
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttlSeconds <= 0 {
		ttl = 0 // No expiration
	}
	return &MemoryStore{
		cache: make(map[string]memoryEntry),
		ttl:   ttl,
	}
}

// Get retrieves a value from the cache.
// Returns the value and true if found and not expired, empty string and false otherwise.
func (c *MemoryStore) Get(key string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.cache[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}

	// Check TTL if enabled
	if c.ttl > 0 && time.Since(entry.timestamp) > c.ttl {
		// Entry expired - clean it up
		c.mu.Lock()
		delete(c.cache, key)
		c.mu.Unlock()
		return "", false
	}

	return entry.value, true
}

// Set stores a value in the cache.
func (c *MemoryStore) Set(key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[key] = memoryEntry{
		value:     value,
		timestamp: time.Now(),
	}
	return nil
}

// Len returns the number of entries in the cache (including expired ones).
func (c *MemoryStore) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// Clear removes all entries from the cache.
func (c *MemoryStore) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]memoryEntry)
}

// Entries returns all non-expired entries as key-value pairs.
func (c *MemoryStore) Entries() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make(map[string]string)
	now := time.Now()

	for key, entry := range c.cache {
		// Skip expired entries
		if c.ttl > 0 && now.Sub(entry.timestamp) > c.ttl {
			continue
		}
		result[key] = entry.value
	}

	return result
}

// Verify MemoryStore implements Store and Enumerable
var (
	_ Store      = (*MemoryStore)(nil)
	_ Enumerable = (*MemoryStore)(nil)
)
