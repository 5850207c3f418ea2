// Package storeclient provides the main entry point for creating store API clients.
package storeclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/storekit-io/wcapi/internal/client"
	"github.com/storekit-io/wcapi/pkg/store"
)

// APIBasePath is the REST API root appended to the store endpoint.
const APIBasePath = "/wp-json/wc/v3"

// New creates a new store API client from configuration. The endpoint may
// be a bare host, a site URL, or a full API root; it is normalized either
// way.
func New(ctx context.Context, config *store.Config) (store.Client, error) {
	if config == nil {
		return nil, store.ErrConfigRequired
	}

	err := config.Validate()
	if err != nil {
		return nil, err
	}

	baseURL := NormalizeEndpoint(config.Endpoint)

	apiClient, err := client.New(ctx, baseURL, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithKeys creates a new client with an endpoint and a consumer key pair.
func NewWithKeys(ctx context.Context, endpoint, consumerKey, consumerSecret string) (store.Client, error) {
	return New(ctx, &store.Config{
		Endpoint:       endpoint,
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
	})
}

// NewFaking creates a client that serves every call from the synthetic
// transport. No endpoint or credentials are needed and no network traffic
// ever happens.
func NewFaking(ctx context.Context) (store.Client, error) {
	return New(ctx, &store.Config{
		Endpoint: "https://faked.invalid",
		Faking:   true,
	})
}

// NormalizeEndpoint turns any reasonable endpoint spelling into a full API
// root URL. Bare hosts get https; site URLs get the API base path appended.
func NormalizeEndpoint(endpoint string) string {
	normalized := strings.TrimSuffix(endpoint, "/")

	if !strings.HasPrefix(normalized, "http://") && !strings.HasPrefix(normalized, "https://") {
		normalized = "https://" + normalized
	}

	if !strings.HasSuffix(normalized, APIBasePath) {
		normalized += APIBasePath
	}

	return normalized
}
