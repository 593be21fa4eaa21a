// Package cache provides translation cache stores: a persistent JSON file
// store, an in-memory store and a Redis-backed store.
package cache

// Store is the interface for translation caching.
type Store interface {
	// Get retrieves a cached translation. Returns empty string and false if not found or expired.
	Get(key string) (string, bool)

	// Set stores a translation in the cache.
	Set(key string, value string) error
}

// Enumerable is implemented by stores whose entries can be listed, which
// export and import rely on.
type Enumerable interface {
	Store

	// Entries returns a snapshot of all live entries.
	Entries() map[string]string
}
