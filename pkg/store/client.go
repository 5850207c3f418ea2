package store

import (
	"context"
	"time"
)

// Client is the top-level interface for interacting with a store API. One
// client instance is safe for concurrent use; resource clients are cheap
// accessors over the shared transport.
type Client interface {
	Products() ProductsClient
	ProductCategories() ProductCategoriesClient
	Orders() OrdersClient
	TaxRates() TaxRatesClient
	ShippingMethods() ShippingMethodsClient
	Coupons() CouponsClient
	Customers() CustomersClient

	// SystemStatus fetches the store environment report.
	SystemStatus(ctx context.Context) (*SystemStatus, error)
}

// ProductsClient provides access to product resources.
type ProductsClient interface {
	Create(ctx context.Context, product *Product) (*Product, error)
	Get(ctx context.Context, id int64, params *QueryParams) (*Product, error)
	List(ctx context.Context, params *QueryParams) (*List[Product], error)
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*List[Product], error)
	Update(ctx context.Context, id int64, product *Product) (*Product, error)
	Delete(ctx context.Context, id int64, force bool) (*Product, error)
	Batch(ctx context.Context, request *BatchRequest[Product]) (*BatchResponse[Product], error)
}

// ProductCategoriesClient provides access to product category resources.
type ProductCategoriesClient interface {
	Create(ctx context.Context, category *ProductCategory) (*ProductCategory, error)
	Get(ctx context.Context, id int64, params *QueryParams) (*ProductCategory, error)
	List(ctx context.Context, params *QueryParams) (*List[ProductCategory], error)
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*List[ProductCategory], error)
	Update(ctx context.Context, id int64, category *ProductCategory) (*ProductCategory, error)
	Delete(ctx context.Context, id int64, force bool) (*ProductCategory, error)
	Batch(ctx context.Context, request *BatchRequest[ProductCategory]) (*BatchResponse[ProductCategory], error)
}

// OrdersClient provides access to order resources.
type OrdersClient interface {
	Create(ctx context.Context, order *Order) (*Order, error)
	Get(ctx context.Context, id int64, params *QueryParams) (*Order, error)
	List(ctx context.Context, params *QueryParams) (*List[Order], error)
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*List[Order], error)
	Update(ctx context.Context, id int64, order *Order) (*Order, error)

	// UpdateStatus is a partial update touching only the status field.
	UpdateStatus(ctx context.Context, id int64, status OrderStatus) (*Order, error)

	Delete(ctx context.Context, id int64, force bool) (*Order, error)
	Batch(ctx context.Context, request *BatchRequest[Order]) (*BatchResponse[Order], error)
}

// TaxRatesClient provides access to tax rate resources.
type TaxRatesClient interface {
	Create(ctx context.Context, rate *TaxRate) (*TaxRate, error)
	Get(ctx context.Context, id int64, params *QueryParams) (*TaxRate, error)
	List(ctx context.Context, params *QueryParams) (*List[TaxRate], error)
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*List[TaxRate], error)
	Update(ctx context.Context, id int64, rate *TaxRate) (*TaxRate, error)
	Delete(ctx context.Context, id int64, force bool) (*TaxRate, error)
	Batch(ctx context.Context, request *BatchRequest[TaxRate]) (*BatchResponse[TaxRate], error)
}

// ShippingMethodsClient provides read-only access to shipping method
// definitions. Shipping methods use string identifiers.
type ShippingMethodsClient interface {
	Get(ctx context.Context, id string) (*ShippingMethod, error)
	List(ctx context.Context, params *QueryParams) (*List[ShippingMethod], error)
}

// CouponsClient provides access to coupon resources.
type CouponsClient interface {
	Create(ctx context.Context, coupon *Coupon) (*Coupon, error)
	Get(ctx context.Context, id int64, params *QueryParams) (*Coupon, error)
	List(ctx context.Context, params *QueryParams) (*List[Coupon], error)
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*List[Coupon], error)
	Update(ctx context.Context, id int64, coupon *Coupon) (*Coupon, error)
	Delete(ctx context.Context, id int64, force bool) (*Coupon, error)
	Batch(ctx context.Context, request *BatchRequest[Coupon]) (*BatchResponse[Coupon], error)
}

// CustomersClient provides access to customer resources.
type CustomersClient interface {
	Create(ctx context.Context, customer *Customer) (*Customer, error)
	Get(ctx context.Context, id int64, params *QueryParams) (*Customer, error)
	List(ctx context.Context, params *QueryParams) (*List[Customer], error)
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*List[Customer], error)
	Update(ctx context.Context, id int64, customer *Customer) (*Customer, error)
	Delete(ctx context.Context, id int64, force bool) (*Customer, error)
	Batch(ctx context.Context, request *BatchRequest[Customer]) (*BatchResponse[Customer], error)
}

// Config holds configuration for creating a client.
type Config struct {
	// Endpoint is the store base URL. A bare host is normalized to https
	// and the REST API root is appended automatically.
	Endpoint string

	// ConsumerKey and ConsumerSecret authenticate every request.
	ConsumerKey    string
	ConsumerSecret string

	// Faking routes every call through the synthetic transport. Individual
	// calls can opt in instead via WithFaking on the context.
	Faking bool

	// HTTPTimeout is the per-request timeout. Zero means the default.
	HTTPTimeout time.Duration

	// RetryMax is the number of transport-level retries. Zero means no
	// request is retried; retry policy belongs to the caller.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Debug enables request and response logging.
	Debug bool

	// Logger receives structured log output. Nil disables logging.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Cache configures response caching. Nil disables caching.
	Cache *CacheConfig

	// Interceptors run around every real HTTP request. Nil disables them.
	// Faked calls never reach the transport and bypass the chain.
	Interceptors *InterceptorChain
}

// Validate checks that the config carries everything a client needs.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigRequired
	}

	if c.Endpoint == "" {
		return ErrEndpointRequired
	}

	if !c.Faking && (c.ConsumerKey == "" || c.ConsumerSecret == "") {
		return ErrCredentialsRequired
	}

	return nil
}

// Logger is the interface for structured log output.
type Logger interface {
	Debug(message string, fields map[string]any)
	Info(message string, fields map[string]any)
	Warn(message string, fields map[string]any)
	Error(message string, fields map[string]any)
}

type fakingKey struct{}

// WithFaking marks the context so the next call is served by the synthetic
// transport regardless of client configuration.
func WithFaking(ctx context.Context) context.Context {
	return context.WithValue(ctx, fakingKey{}, true)
}

// FakingEnabled reports whether the context carries the faking marker.
func FakingEnabled(ctx context.Context) bool {
	enabled, ok := ctx.Value(fakingKey{}).(bool)

	return ok && enabled
}
