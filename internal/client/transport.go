// Package client implements the store.Client interface.
package client

import (
	"context"
	"net/url"
	"time"

	internalhttp "github.com/storekit-io/wcapi/internal/http"
	"github.com/storekit-io/wcapi/pkg/store"
)

// Transport abstracts the wire layer under the typed resource clients. The
// real HTTP client and the synthetic faking transport both implement it, so
// the layers above never know which one served a call.
type Transport interface {
	Get(ctx context.Context, path string, query url.Values) (*internalhttp.Response, error)
	Post(ctx context.Context, path string, body any) (*internalhttp.Response, error)
	Put(ctx context.Context, path string, body any) (*internalhttp.Response, error)
	Delete(ctx context.Context, path string, query url.Values) (*internalhttp.Response, error)
}

// switchingTransport routes each call to the real or the synthetic
// transport. The decision happens here and nowhere else: client-wide faking
// via config, or per-call faking via the context marker.
type switchingTransport struct {
	real       Transport
	fake       Transport
	alwaysFake bool
}

func (t *switchingTransport) pick(ctx context.Context) Transport {
	if t.alwaysFake || store.FakingEnabled(ctx) {
		return t.fake
	}

	return t.real
}

func (t *switchingTransport) Get(ctx context.Context, path string, query url.Values) (*internalhttp.Response, error) {
	return t.pick(ctx).Get(ctx, path, query)
}

func (t *switchingTransport) Post(ctx context.Context, path string, body any) (*internalhttp.Response, error) {
	return t.pick(ctx).Post(ctx, path, body)
}

func (t *switchingTransport) Put(ctx context.Context, path string, body any) (*internalhttp.Response, error) {
	return t.pick(ctx).Put(ctx, path, body)
}

func (t *switchingTransport) Delete(ctx context.Context, path string, query url.Values) (*internalhttp.Response, error) {
	return t.pick(ctx).Delete(ctx, path, query)
}

// Pagination headers worth preserving across the cache.
var cachedHeaders = []string{"X-WP-Total", "X-WP-TotalPages"}

// cachingTransport serves repeated GETs from a cache. Any write clears the
// whole cache; invalidation is coarse because resources cross-reference each
// other (orders embed products, products embed categories).
type cachingTransport struct {
	inner   Transport
	cache   store.Cache
	options *store.CacheOptions
}

func newCachingTransport(inner Transport, cache store.Cache, options *store.CacheOptions) *cachingTransport {
	if options == nil {
		options = store.DefaultCacheOptions()
	}

	return &cachingTransport{inner: inner, cache: cache, options: options}
}

func cacheKey(path string, query url.Values) string {
	key := "GET " + path
	if len(query) > 0 {
		key += "?" + query.Encode()
	}

	return key
}

func (t *cachingTransport) Get(ctx context.Context, path string, query url.Values) (*internalhttp.Response, error) {
	key := cacheKey(path, query)

	entry, err := t.cache.Get(ctx, key)
	if err == nil {
		resp := &internalhttp.Response{
			StatusCode: entry.StatusCode,
			Headers:    make(map[string][]string, len(entry.Headers)),
			Body:       entry.Body,
		}

		for name, value := range entry.Headers {
			resp.Headers.Set(name, value)
		}

		return resp, nil
	}

	resp, err := t.inner.Get(ctx, path, query)
	if err != nil {
		return resp, err
	}

	if t.options.MaxValueSize > 0 && len(resp.Body) > t.options.MaxValueSize {
		return resp, nil
	}

	headers := make(map[string]string)

	for _, name := range cachedHeaders {
		if value := resp.Headers.Get(name); value != "" {
			headers[name] = value
		}
	}

	now := time.Now()
	_ = t.cache.Set(ctx, key, &store.CacheEntry{
		Body:       resp.Body,
		StatusCode: resp.StatusCode,
		Headers:    headers,
		CreatedAt:  now,
		ExpiresAt:  now.Add(t.options.TTL),
	})

	return resp, nil
}

func (t *cachingTransport) Post(ctx context.Context, path string, body any) (*internalhttp.Response, error) {
	resp, err := t.inner.Post(ctx, path, body)
	if err == nil {
		_ = t.cache.Clear(ctx)
	}

	return resp, err
}

func (t *cachingTransport) Put(ctx context.Context, path string, body any) (*internalhttp.Response, error) {
	resp, err := t.inner.Put(ctx, path, body)
	if err == nil {
		_ = t.cache.Clear(ctx)
	}

	return resp, err
}

func (t *cachingTransport) Delete(ctx context.Context, path string, query url.Values) (*internalhttp.Response, error) {
	resp, err := t.inner.Delete(ctx, path, query)
	if err == nil {
		_ = t.cache.Clear(ctx)
	}

	return resp, err
}
