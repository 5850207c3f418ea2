package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/storekit-io/wcapi/internal/constants"
)

// NATSKVConfig configures the NATS JetStream key-value cache backend.
type NATSKVConfig struct {
	// URL is the NATS server URL. Empty means the library default.
	URL string

	// Bucket is the KV bucket name.
	Bucket string

	// TTL is the bucket-level entry TTL. Zero means the default cache TTL.
	TTL time.Duration

	// Conn reuses an existing connection instead of dialing URL.
	Conn *nats.Conn
}

// NATSKVCache stores cache entries in a NATS JetStream key-value bucket so
// several client processes can share one response cache.
type NATSKVCache struct {
	kv       nats.KeyValue
	conn     *nats.Conn
	ownsConn bool
}

// NewNATSKVCache connects to NATS and binds or creates the configured
// bucket.
func NewNATSKVCache(config *NATSKVConfig) (*NATSKVCache, error) {
	if config == nil || config.Bucket == "" {
		return nil, ErrNATSConfigRequired
	}

	conn := config.Conn
	ownsConn := false

	if conn == nil {
		url := config.URL
		if url == "" {
			url = nats.DefaultURL
		}

		var err error

		conn, err = nats.Connect(url)
		if err != nil {
			return nil, fmt.Errorf("connecting to NATS: %w", err)
		}

		ownsConn = true
	}

	js, err := conn.JetStream()
	if err != nil {
		if ownsConn {
			conn.Close()
		}

		return nil, fmt.Errorf("getting JetStream context: %w", err)
	}

	kv, err := js.KeyValue(config.Bucket)
	if errors.Is(err, nats.ErrBucketNotFound) {
		ttl := config.TTL
		if ttl == 0 {
			ttl = constants.DefaultCacheTTL
		}

		kv, err = js.CreateKeyValue(&nats.KeyValueConfig{
			Bucket: config.Bucket,
			TTL:    ttl,
		})
	}

	if err != nil {
		if ownsConn {
			conn.Close()
		}

		return nil, fmt.Errorf("binding KV bucket %q: %w", config.Bucket, err)
	}

	return &NATSKVCache{kv: kv, conn: conn, ownsConn: ownsConn}, nil
}

// Get retrieves an entry from the bucket.
func (c *NATSKVCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	kvEntry, err := c.kv.Get(encodeKVKey(key))
	if err != nil {
		if errors.Is(err, nats.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
		}

		return nil, fmt.Errorf("getting cache entry: %w", err)
	}

	var entry CacheEntry

	err = json.Unmarshal(kvEntry.Value(), &entry)
	if err != nil {
		return nil, fmt.Errorf("decoding cache entry: %w", err)
	}

	if entry.IsExpired() {
		_ = c.kv.Delete(encodeKVKey(key))

		return nil, fmt.Errorf("%w: %s", ErrCacheEntryExpired, key)
	}

	return &entry, nil
}

// Set stores an entry in the bucket.
func (c *NATSKVCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	_, err = c.kv.Put(encodeKVKey(key), data)
	if err != nil {
		return fmt.Errorf("storing cache entry: %w", err)
	}

	return nil
}

// Delete removes an entry from the bucket.
func (c *NATSKVCache) Delete(ctx context.Context, key string) error {
	err := c.kv.Delete(encodeKVKey(key))
	if err != nil && !errors.Is(err, nats.ErrKeyNotFound) {
		return fmt.Errorf("deleting cache entry: %w", err)
	}

	return nil
}

// Clear removes every entry from the bucket.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	keys, err := c.kv.Keys()
	if err != nil {
		if errors.Is(err, nats.ErrNoKeysFound) {
			return nil
		}

		return fmt.Errorf("listing cache keys: %w", err)
	}

	for _, key := range keys {
		err = c.kv.Purge(key)
		if err != nil {
			return fmt.Errorf("purging cache key: %w", err)
		}
	}

	return nil
}

// Has checks whether a non-expired entry exists.
func (c *NATSKVCache) Has(ctx context.Context, key string) bool {
	entry, err := c.Get(ctx, key)

	return err == nil && entry != nil
}

// Close releases the NATS connection if the cache dialed it.
func (c *NATSKVCache) Close() {
	if c.ownsConn && c.conn != nil {
		c.conn.Close()
	}
}

// encodeKVKey maps arbitrary cache keys (paths with slashes and query
// strings) onto the restricted NATS KV key alphabet.
func encodeKVKey(key string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(key))
}
