package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit-io/wcapi/internal/auth"
	storehttp "github.com/storekit-io/wcapi/internal/http"
	"github.com/storekit-io/wcapi/pkg/store"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]any
}

func (l *MockLogger) Debug(msg string, fields map[string]any) {
	l.logs = append(l.logs, map[string]any{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]any) {
	l.logs = append(l.logs, map[string]any{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]any) {
	l.logs = append(l.logs, map[string]any{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]any) {
	l.logs = append(l.logs, map[string]any{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/products/42", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "wcapi/1.0", request.Header.Get("User-Agent"))

			key, secret, ok := request.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "ck_test", key)
			assert.Equal(t, "cs_test", secret)

			response := map[string]any{"id": 42, "name": "Hoodie"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := storehttp.NewClient(server.URL, auth.NewStaticProvider("ck_test", "cs_test"))

		req := &storehttp.Request{
			Method: "GET",
			Path:   "/products/42",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]any

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "Hoodie", result["name"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/products", request.URL.Path)
			assert.Equal(t, "20", request.URL.Query().Get("per_page"))
			assert.Equal(t, "2", request.URL.Query().Get("page"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := storehttp.NewClient(server.URL, nil)

		req := &storehttp.Request{
			Method: "GET",
			Path:   "/products",
			Query:  url.Values{"per_page": []string{"20"}, "page": []string{"2"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "Widget", body["name"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := storehttp.NewClient(server.URL, nil)

		req := &storehttp.Request{
			Method: "POST",
			Path:   "/products",
			Body:   map[string]string{"name": "Widget"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"code":"rest_invalid_id","message":"Invalid ID.","data":{"status":404}}`))
		}))
		defer server.Close()

		client := storehttp.NewClient(server.URL, nil)

		req := &storehttp.Request{
			Method: "GET",
			Path:   "/products/999999",
		}

		resp, err := client.Do(context.Background(), req)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 404, resp.StatusCode)

		assert.True(t, store.IsNotFound(err))
		assert.Contains(t, err.Error(), "Invalid ID.")
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := storehttp.NewClient(server.URL, nil)

		req := &storehttp.Request{
			Method: "GET",
			Path:   "/products",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		_, err := client.Do(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		client := storehttp.NewClient("http://127.0.0.1:1", nil)

		_, err := client.Do(context.Background(), &storehttp.Request{Method: "GET", Path: "/products"})

		require.Error(t, err)
		assert.True(t, store.IsTransportFailure(err))
	})

	t.Run("debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := storehttp.NewClient(server.URL, nil,
			storehttp.WithLogger(logger),
			storehttp.WithDebug(true))

		_, err := client.Do(context.Background(), &storehttp.Request{Method: "GET", Path: "/orders"})
		require.NoError(t, err)

		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

func TestClient_RetryBehavior(t *testing.T) {
	t.Parallel()

	t.Run("no retry by default", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := storehttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "/products", nil)

		require.Error(t, err)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("retries when configured", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 3 {
				writer.WriteHeader(http.StatusServiceUnavailable)

				return
			}

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := storehttp.NewClient(server.URL, nil,
			storehttp.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond))

		resp, err := client.Get(context.Background(), "/products", nil)

		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("no retry on client errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = writer.Write([]byte(`{"code":"rest_invalid_param","message":"Invalid parameter.","data":{"status":400}}`))
		}))
		defer server.Close()

		client := storehttp.NewClient(server.URL, nil,
			storehttp.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond))

		_, err := client.Get(context.Background(), "/products", nil)

		require.Error(t, err)
		assert.True(t, store.IsBadRequest(err))
		assert.Equal(t, int32(1), attempts.Load())
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	t.Run("request interceptors run before the send", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "import-job", request.Header.Get("X-Request-Source"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		chain := store.NewInterceptorChain()
		chain.AddRequestInterceptor(store.HeaderInterceptor(map[string]string{
			"X-Request-Source": "import-job",
		}))

		client := storehttp.NewClient(server.URL, nil, storehttp.WithInterceptors(chain))

		resp, err := client.Get(context.Background(), "/products", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request interceptor failure aborts the call", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			hits.Add(1)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		rejected := errors.New("request rejected")

		chain := store.NewInterceptorChain()
		chain.AddRequestInterceptor(func(ctx context.Context, req *store.Request) error {
			return rejected
		})

		client := storehttp.NewClient(server.URL, nil, storehttp.WithInterceptors(chain))

		_, err := client.Get(context.Background(), "/products", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, rejected)
		assert.Equal(t, int32(0), hits.Load())
	})

	t.Run("response interceptors observe the translated error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"code":"rest_invalid_id","message":"Invalid ID.","data":{"status":404}}`))
		}))
		defer server.Close()

		var observed *store.Response

		chain := store.NewInterceptorChain()
		chain.AddResponseInterceptor(func(ctx context.Context, req *store.Request, resp *store.Response) error {
			observed = resp

			return nil
		})

		client := storehttp.NewClient(server.URL, nil, storehttp.WithInterceptors(chain))

		_, err := client.Get(context.Background(), "/products/999999", nil)

		require.Error(t, err)
		assert.True(t, store.IsNotFound(err))

		require.NotNil(t, observed)
		assert.Equal(t, 404, observed.StatusCode)
		assert.True(t, store.IsNotFound(observed.Error))
	})

	t.Run("metrics interceptors count wired calls", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		collector := store.NewMetricsCollector()

		chain := store.NewInterceptorChain()
		chain.AddRequestInterceptor(store.MetricsRequestInterceptor(collector))
		chain.AddResponseInterceptor(store.MetricsResponseInterceptor(collector))

		client := storehttp.NewClient(server.URL, nil, storehttp.WithInterceptors(chain))

		_, err := client.Get(context.Background(), "/orders", nil)
		require.NoError(t, err)

		metrics := collector.GetMetrics("GET /orders")
		require.NotNil(t, metrics)
		assert.Equal(t, int64(1), metrics.TotalRequests)
		assert.Equal(t, int64(0), metrics.TotalErrors)
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		call   func(client *storehttp.Client, serverURL string) (*storehttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			call: func(client *storehttp.Client, _ string) (*storehttp.Response, error) {
				return client.Get(context.Background(), "/products", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			call: func(client *storehttp.Client, _ string) (*storehttp.Response, error) {
				return client.Post(context.Background(), "/products", map[string]string{"name": "x"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			call: func(client *storehttp.Client, _ string) (*storehttp.Response, error) {
				return client.Put(context.Background(), "/products", map[string]string{"name": "x"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			call: func(client *storehttp.Client, _ string) (*storehttp.Response, error) {
				return client.Delete(context.Background(), "/products", url.Values{"force": []string{"true"}})
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := storehttp.NewClient(server.URL, nil)

			resp, err := testCase.call(client, server.URL)
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}
