package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit-io/wcapi/internal/client"
	"github.com/storekit-io/wcapi/pkg/store"
)

func TestFaking_ClientWide(t *testing.T) {
	t.Parallel()

	// No server exists; every call must be served synthetically.
	apiClient, err := client.New(context.Background(), "https://faked.invalid/wp-json/wc/v3", &store.Config{
		Endpoint: "https://faked.invalid",
		Faking:   true,
	})
	require.NoError(t, err)

	products, err := apiClient.Products().List(context.Background(), store.NewQueryParams().WithPerPage(4))

	require.NoError(t, err)
	assert.Len(t, products.Items, 4)
	assert.Equal(t, 3, products.Meta.TotalPages)

	product, err := apiClient.Products().Get(context.Background(), 42, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(42), product.ID)
}

func TestFaking_PerCallContext(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		hits.Add(1)
		_, _ = writer.Write([]byte(`{"id":7,"name":"Real Product"}`))
	}))
	defer server.Close()

	apiClient, err := client.New(context.Background(), server.URL, testConfig(server.URL))
	require.NoError(t, err)

	// Plain context goes over the wire.
	real, err := apiClient.Products().Get(context.Background(), 7, nil)
	require.NoError(t, err)
	assert.Equal(t, "Real Product", real.Name)
	assert.Equal(t, int32(1), hits.Load())

	// Marked context is served synthetically; the server sees nothing.
	faked, err := apiClient.Products().Get(store.WithFaking(context.Background()), 7, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), faked.ID)
	assert.NotEqual(t, "Real Product", faked.Name)
	assert.Equal(t, int32(1), hits.Load())
}

func TestInterceptors_WiredThroughConfig(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "import-job", request.Header.Get("X-Request-Source"))
		_, _ = writer.Write([]byte(`[]`))
	}))
	defer server.Close()

	collector := store.NewMetricsCollector()

	chain := store.NewInterceptorChain()
	chain.AddRequestInterceptor(store.HeaderInterceptor(map[string]string{
		"X-Request-Source": "import-job",
	}))
	chain.AddRequestInterceptor(store.MetricsRequestInterceptor(collector))
	chain.AddResponseInterceptor(store.MetricsResponseInterceptor(collector))

	config := testConfig(server.URL)
	config.Interceptors = chain

	apiClient, err := client.New(context.Background(), server.URL, config)
	require.NoError(t, err)

	_, err = apiClient.Products().List(context.Background(), nil)
	require.NoError(t, err)

	metrics := collector.GetMetrics("GET /products")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(1), metrics.TotalRequests)
}

func TestCaching_RepeatedGetServedFromCache(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		hits.Add(1)
		writer.Header().Set("X-WP-Total", "1")
		writer.Header().Set("X-WP-TotalPages", "1")
		_, _ = writer.Write([]byte(`[{"id":1,"name":"Cached"}]`))
	}))
	defer server.Close()

	config := testConfig(server.URL)
	config.Cache = store.DefaultCacheConfig()

	apiClient, err := client.New(context.Background(), server.URL, config)
	require.NoError(t, err)

	first, err := apiClient.Products().List(context.Background(), nil)
	require.NoError(t, err)

	second, err := apiClient.Products().List(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, first.Items, second.Items)

	// Pagination headers survive the cache round-trip.
	assert.Equal(t, 1, second.Meta.Total)
	assert.Equal(t, 1, second.Meta.TotalPages)
}

func TestCaching_QueryIsPartOfTheKey(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		hits.Add(1)
		_, _ = writer.Write([]byte(`[]`))
	}))
	defer server.Close()

	config := testConfig(server.URL)
	config.Cache = store.DefaultCacheConfig()

	apiClient, err := client.New(context.Background(), server.URL, config)
	require.NoError(t, err)

	_, err = apiClient.Products().List(context.Background(), store.NewQueryParams().WithPage(1))
	require.NoError(t, err)

	_, err = apiClient.Products().List(context.Background(), store.NewQueryParams().WithPage(2))
	require.NoError(t, err)

	assert.Equal(t, int32(2), hits.Load())
}

func TestCaching_WriteInvalidates(t *testing.T) {
	t.Parallel()

	var gets atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Method == http.MethodGet {
			gets.Add(1)
			_, _ = writer.Write([]byte(`[{"id":1,"name":"Widget"}]`))

			return
		}

		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(`{"id":2,"name":"New"}`))
	}))
	defer server.Close()

	config := testConfig(server.URL)
	config.Cache = store.DefaultCacheConfig()

	apiClient, err := client.New(context.Background(), server.URL, config)
	require.NoError(t, err)

	_, err = apiClient.Products().List(context.Background(), nil)
	require.NoError(t, err)

	_, err = apiClient.Products().Create(context.Background(), &store.Product{Name: "New"})
	require.NoError(t, err)

	// The create cleared the cache, so this listing goes back to the server.
	_, err = apiClient.Products().List(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, int32(2), gets.Load())
}
