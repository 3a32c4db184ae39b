package cache

import "time"

// CacheService defines the behavior for in-process caching. The store uses
// it to memoize derived views with explicit invalidation.
type CacheService interface {
	// Get retrieves a value from the cache.
	// Returns value, true if found; nil, false if not.
	Get(key string) (interface{}, bool)

	// Set adds a value to the cache with a duration
	Set(key string, value interface{}, duration time.Duration)

	// Delete removes a value from the cache
	Delete(key string)

	// Flush removes all items
	Flush()
}
