// Package http provides the HTTP transport for store API communication.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/storekit-io/wcapi/internal/auth"
	"github.com/storekit-io/wcapi/internal/constants"
	"github.com/storekit-io/wcapi/pkg/store"
)

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    any
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the HTTP client for API requests. Credentials are attached as
// basic auth on every request; retries are off unless configured.
type Client struct {
	baseURL      string
	credentials  auth.Provider
	httpClient   *retryablehttp.Client
	logger       store.Logger
	debug        bool
	userAgent    string
	interceptors *store.InterceptorChain
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger for debug output.
func WithLogger(logger store.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithRetryConfig sets transport-level retry behavior. Without this option
// no request is ever retried.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithInterceptors runs the chain around every request: request
// interceptors before the send, response interceptors after.
func WithInterceptors(chain *store.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a new HTTP client for the given API root.
func NewClient(baseURL string, credentials auth.Provider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil

	// Surface the final response after exhausted retries so API error bodies
	// still reach the error translator.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		credentials: credentials,
		httpClient:  retryClient,
		userAgent:   "wcapi/1.0",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request. On API errors both the response and a non-nil
// error are returned so callers can inspect status and body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var (
		bodyBytes  []byte
		bodyReader io.Reader
	)

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyBytes = encoded
		bodyReader = bytes.NewReader(encoded)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	// The chain shares the request's header map, so interceptor mutations
	// reach the wire.
	var intReq *store.Request

	if c.interceptors != nil {
		intReq = &store.Request{
			Method:  req.Method,
			Path:    req.Path,
			Headers: httpReq.Header,
			Body:    bodyBytes,
		}

		err := c.interceptors.ExecuteRequestInterceptors(ctx, intReq)
		if err != nil {
			return nil, err
		}
	}

	if c.credentials != nil {
		key, secret, err := c.credentials.Credentials(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting credentials: %w", err)
		}

		httpReq.SetBasicAuth(key, secret)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]any{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, store.NewTransportError(err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, store.NewTransportError(err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]any{
			"status_code": resp.StatusCode,
			"url":         fullURL,
		})
	}

	var apiErr error
	if resp.StatusCode >= http.StatusBadRequest {
		apiErr = store.ParseErrorResponse(respBody, resp.StatusCode)
	}

	if c.interceptors != nil {
		intResp := &store.Response{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       respBody,
			Error:      apiErr,
		}

		err := c.interceptors.ExecuteResponseInterceptors(ctx, intReq, intResp)
		if err != nil {
			return resp, err
		}
	}

	if apiErr != nil {
		return resp, apiErr
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Query: query})
}
