package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/storekit-io/wcapi/internal/constants"
)

// Cache is the interface for response cache backends. Entries hold the raw
// response body for a GET request keyed by method, path, and query string.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// CacheEntry is one cached response.
type CacheEntry struct {
	// Body is the raw response body.
	Body []byte

	// StatusCode is the response status the entry was stored with.
	StatusCode int

	// Headers preserves the pagination headers of list responses.
	Headers map[string]string

	// CreatedAt is when the entry was stored.
	CreatedAt time.Time

	// ExpiresAt is when the entry stops being served.
	ExpiresAt time.Time
}

// IsExpired reports whether the entry is past its expiry.
func (e *CacheEntry) IsExpired() bool {
	return !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt)
}

// CacheOptions are common options applied to any backend.
type CacheOptions struct {
	// TTL is how long entries stay valid.
	TTL time.Duration

	// MaxValueSize rejects bodies larger than this many bytes. Zero means
	// the default.
	MaxValueSize int
}

// DefaultCacheOptions returns default cache options.
func DefaultCacheOptions() *CacheOptions {
	return &CacheOptions{
		TTL:          constants.DefaultCacheTTL,
		MaxValueSize: constants.MaxCacheValueSize,
	}
}

// MemoryCache is an in-memory cache with bounded size. Safe for concurrent
// use.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*CacheEntry
	maxSize int
}

// NewMemoryCache creates a memory cache holding at most maxSize entries.
func NewMemoryCache(maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = constants.DefaultCacheSize
	}

	return &MemoryCache{
		entries: make(map[string]*CacheEntry),
		maxSize: maxSize,
	}
}

// Get retrieves an entry. Expired entries are removed and reported as
// missing.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	if entry.IsExpired() {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()

		return nil, fmt.Errorf("%w: %s", ErrCacheEntryExpired, key)
	}

	return entry, nil
}

// Set stores an entry, evicting the oldest entry when the cache is full.
// Bodies over the size limit are rejected.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	if len(entry.Body) > constants.MaxCacheValueSize {
		return fmt.Errorf("%w: %d bytes", ErrCacheValueTooLarge, len(entry.Body))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		c.evictOldestLocked()
	}

	c.entries[key] = entry

	return nil
}

// Delete removes an entry.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	return nil
}

// Clear removes all entries.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*CacheEntry)

	return nil
}

// Has checks whether a non-expired entry exists.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]

	return ok && !entry.IsExpired()
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

func (c *MemoryCache) evictOldestLocked() {
	var (
		oldestKey  string
		oldestTime time.Time
	)

	for key, entry := range c.entries {
		if oldestKey == "" || entry.CreatedAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.CreatedAt
		}
	}

	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}
