package store_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit-io/wcapi/pkg/store"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	withStatus := &store.APIError{
		Code:    store.ErrorCodeInvalidID,
		Message: "Invalid ID.",
		Data:    store.ErrorData{Status: http.StatusNotFound},
	}
	assert.Equal(t, "rest_invalid_id: Invalid ID. (status: 404)", withStatus.Error())

	withoutStatus := &store.APIError{
		Code:    store.ErrorCodeTransport,
		Message: "connection refused",
	}
	assert.Equal(t, "transport_error: connection refused", withoutStatus.Error())
}

func TestParseErrorResponse(t *testing.T) {
	t.Parallel()

	t.Run("well formed error body", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"code":"store_rest_cannot_view","message":"Sorry, you cannot view this resource.","data":{"status":401}}`)

		apiErr := store.ParseErrorResponse(body, http.StatusUnauthorized)

		assert.Equal(t, "store_rest_cannot_view", apiErr.Code)
		assert.Equal(t, "Sorry, you cannot view this resource.", apiErr.Message)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status())
	})

	t.Run("status filled from transport when body omits it", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"code":"term_exists","message":"A term with the name provided already exists."}`)

		apiErr := store.ParseErrorResponse(body, http.StatusBadRequest)

		assert.Equal(t, http.StatusBadRequest, apiErr.Status())
	})

	t.Run("unparseable body degrades to snippet", func(t *testing.T) {
		t.Parallel()

		apiErr := store.ParseErrorResponse([]byte("<html>Bad Gateway</html>"), http.StatusBadGateway)

		assert.Equal(t, store.ErrorCodeUnknown, apiErr.Code)
		assert.Contains(t, apiErr.Message, "Bad Gateway")
		assert.Equal(t, http.StatusBadGateway, apiErr.Status())
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		apiErr := store.ParseErrorResponse(nil, http.StatusInternalServerError)

		assert.Equal(t, store.ErrorCodeUnknown, apiErr.Code)
		assert.Equal(t, "empty response body", apiErr.Message)
	})
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	notFound := store.ParseErrorResponse([]byte(`{"code":"rest_invalid_id","message":"Invalid ID.","data":{"status":404}}`), http.StatusNotFound)

	// Predicates must see through wrapping.
	wrapped := fmt.Errorf("getting product: %w", notFound)

	assert.True(t, store.IsNotFound(wrapped))
	assert.False(t, store.IsUnauthorized(wrapped))
	assert.False(t, store.IsForbidden(wrapped))
	assert.False(t, store.IsBadRequest(wrapped))
	assert.False(t, store.IsTransportFailure(wrapped))
	assert.False(t, store.IsNotFound(errors.New("plain error")))
}

func TestNewTransportError(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	apiErr := store.NewTransportError(cause)

	require.ErrorIs(t, apiErr, cause)
	assert.True(t, store.IsTransportFailure(apiErr))
	assert.Zero(t, apiErr.Status())
	assert.False(t, store.IsNotFound(apiErr))
}
