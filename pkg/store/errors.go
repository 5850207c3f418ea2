package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/storekit-io/wcapi/internal/constants"
)

// APIError represents an error returned by the store API. The wire shape is
// {"code": "...", "message": "...", "data": {"status": N}}. Transport
// failures are wrapped into an APIError with a zero status and a non-nil
// cause.
type APIError struct {
	Code    string    `json:"code"    yaml:"code"`
	Message string    `json:"message" yaml:"message"`
	Data    ErrorData `json:"data"    yaml:"data"`

	cause error
}

// ErrorData carries the HTTP status the server attached to the error.
type ErrorData struct {
	Status int `json:"status" yaml:"status"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Data.Status > 0 {
		return fmt.Sprintf("%s: %s (status: %d)", e.Code, e.Message, e.Data.Status)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying transport cause, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// Status returns the HTTP status attached to the error, or zero for
// transport failures that never produced a response.
func (e *APIError) Status() int {
	return e.Data.Status
}

// Common server error codes.
const (
	ErrorCodeInvalidID     = "rest_invalid_id"
	ErrorCodeInvalidParam  = "rest_invalid_param"
	ErrorCodeNoRoute       = "rest_no_route"
	ErrorCodeCannotView    = "store_rest_cannot_view"
	ErrorCodeCannotCreate  = "store_rest_cannot_create"
	ErrorCodeCannotEdit    = "store_rest_cannot_edit"
	ErrorCodeCannotDelete  = "store_rest_cannot_delete"
	ErrorCodeTermExists    = "term_exists"
	ErrorCodeUnknown       = "unknown_error"
	ErrorCodeTransport     = "transport_error"
	ErrorCodeDecodeFailure = "decode_error"
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrEndpointRequired     = errors.New("endpoint is required")
	ErrCredentialsRequired  = errors.New("consumer key and secret are required")
	ErrNoMoreItems          = errors.New("no more items")
	ErrNotLoggedIn          = errors.New("not logged in")
	ErrUnsupportedCacheType = errors.New("unsupported cache type")
	ErrCacheDisabled        = errors.New("cache disabled")
	ErrCacheEntryExpired    = errors.New("cache entry expired")
	ErrCacheKeyNotFound     = errors.New("key not found in cache")
	ErrCacheValueTooLarge  = errors.New("cache value exceeds size limit")
	ErrNATSConfigRequired  = errors.New("NATS configuration required for NATS cache")
	ErrUnknownResourcePath = errors.New("no resource registered for path")
	ErrBatchTooLarge       = errors.New("batch exceeds server item limit")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrMissingIdentifier   = errors.New("identifier is required")
)

// NewTransportError wraps a transport-level failure (connection error,
// timeout, no response) into the single domain error shape.
func NewTransportError(cause error) *APIError {
	return &APIError{
		Code:    ErrorCodeTransport,
		Message: cause.Error(),
		cause:   cause,
	}
}

// ParseErrorResponse normalizes a non-2xx response body into an APIError.
// Unparseable bodies degrade to a generic error carrying a body snippet and
// the HTTP status.
func ParseErrorResponse(body []byte, statusCode int) *APIError {
	var apiErr APIError

	err := json.Unmarshal(body, &apiErr)
	if err != nil || apiErr.Code == "" {
		return &APIError{
			Code:    ErrorCodeUnknown,
			Message: bodySnippet(body),
			Data:    ErrorData{Status: statusCode},
		}
	}

	if apiErr.Data.Status == 0 {
		apiErr.Data.Status = statusCode
	}

	return &apiErr
}

// IsNotFound checks if the error is a not-found rejection.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an authentication rejection.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is an authorization rejection.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsBadRequest checks if the error is a validation rejection.
func IsBadRequest(err error) bool {
	return hasStatus(err, http.StatusBadRequest)
}

// IsTransportFailure checks if the error never produced a server response.
func IsTransportFailure(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeTransport
	}

	return false
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Data.Status == status
	}

	return false
}

func bodySnippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > constants.ErrorBodySnippetLength {
		s = s[:constants.ErrorBodySnippetLength] + "..."
	}

	if s == "" {
		s = "empty response body"
	}

	return s
}
