package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/storekit-io/wcapi/internal/auth"
	"github.com/storekit-io/wcapi/internal/fake"
	internalhttp "github.com/storekit-io/wcapi/internal/http"
	"github.com/storekit-io/wcapi/pkg/store"
)

// Client implements the store.Client interface.
type Client struct {
	transport Transport
	baseURL   string
	logger    store.Logger

	// Resource clients
	products          store.ProductsClient
	productCategories store.ProductCategoriesClient
	orders            store.OrdersClient
	taxRates          store.TaxRatesClient
	shippingMethods   store.ShippingMethodsClient
	coupons           store.CouponsClient
	customers         store.CustomersClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *store.Config) []internalhttp.Option {
	var httpOpts []internalhttp.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, internalhttp.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, internalhttp.WithInterceptors(config.Interceptors))
	}

	return httpOpts
}

// New creates a new store API client. baseURL must already point at the
// REST API root; endpoint normalization is the public constructor's job.
func New(ctx context.Context, baseURL string, config *store.Config) (*Client, error) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}

	credentials := auth.NewStaticProvider(config.ConsumerKey, config.ConsumerSecret)
	httpClient := internalhttp.NewClient(baseURL, credentials, createHTTPClientOptions(config)...)

	var transport Transport = &switchingTransport{
		real:       httpClient,
		fake:       fake.NewTransport(),
		alwaysFake: config.Faking,
	}

	if config.Cache != nil && config.Cache.Type != store.CacheTypeNone {
		cache, err := store.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("creating cache: %w", err)
		}

		transport = newCachingTransport(transport, cache, config.Cache.Options)
	}

	client := &Client{
		transport: transport,
		baseURL:   baseURL,
		logger:    config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// NewWithTransport creates a client over an explicit transport. Tests use it
// to drive the typed clients against a stub wire layer.
func NewWithTransport(transport Transport) *Client {
	client := &Client{transport: transport}
	client.initializeResourceClients()

	return client
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.products = NewProductsClient(c.transport)
	c.productCategories = NewProductCategoriesClient(c.transport)
	c.orders = NewOrdersClient(c.transport)
	c.taxRates = NewTaxRatesClient(c.transport)
	c.shippingMethods = NewShippingMethodsClient(c.transport)
	c.coupons = NewCouponsClient(c.transport)
	c.customers = NewCustomersClient(c.transport)
}

// Products implements store.Client.Products.
func (c *Client) Products() store.ProductsClient {
	return c.products
}

// ProductCategories implements store.Client.ProductCategories.
func (c *Client) ProductCategories() store.ProductCategoriesClient {
	return c.productCategories
}

// Orders implements store.Client.Orders.
func (c *Client) Orders() store.OrdersClient {
	return c.orders
}

// TaxRates implements store.Client.TaxRates.
func (c *Client) TaxRates() store.TaxRatesClient {
	return c.taxRates
}

// ShippingMethods implements store.Client.ShippingMethods.
func (c *Client) ShippingMethods() store.ShippingMethodsClient {
	return c.shippingMethods
}

// Coupons implements store.Client.Coupons.
func (c *Client) Coupons() store.CouponsClient {
	return c.coupons
}

// Customers implements store.Client.Customers.
func (c *Client) Customers() store.CustomersClient {
	return c.customers
}

// SystemStatus implements store.Client.SystemStatus.
func (c *Client) SystemStatus(ctx context.Context) (*store.SystemStatus, error) {
	resp, err := c.transport.Get(ctx, "/system_status", nil)
	if err != nil {
		return nil, fmt.Errorf("getting system status: %w", err)
	}

	var status store.SystemStatus

	err = json.Unmarshal(resp.Body, &status)
	if err != nil {
		return nil, fmt.Errorf("parsing system status response: %w", err)
	}

	return &status, nil
}
