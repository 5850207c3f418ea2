// Package fake provides a synthetic transport that serves plausible store
// API responses without any network access. It speaks the same wire shapes
// as the real transport so the typed clients above it cannot tell the two
// apart.
package fake

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/storekit-io/wcapi/internal/constants"
	internalhttp "github.com/storekit-io/wcapi/internal/http"
	"github.com/storekit-io/wcapi/pkg/store"
)

// Pages a synthesized collection pretends to have.
const fakeTotalPages = 3

// Transport serves synthesized responses. Stateless and safe for concurrent
// use; successive calls for the same path return fresh random data.
type Transport struct{}

// NewTransport creates a synthetic transport.
func NewTransport() *Transport {
	return &Transport{}
}

// Get serves collection listings, singular lookups, and singletons.
func (t *Transport) Get(ctx context.Context, path string, query url.Values) (*internalhttp.Response, error) {
	desc, ok := store.DescriptorForPath(path)
	if !ok {
		return nil, notFound(path)
	}

	switch {
	case desc.Singleton:
		return jsonResponse(http.StatusOK, desc.Fake(), nil)

	case path == desc.Path:
		return t.list(desc, query)

	default:
		return t.get(desc, path)
	}
}

// Post serves creates and batch envelopes.
func (t *Transport) Post(ctx context.Context, path string, body any) (*internalhttp.Response, error) {
	desc, ok := store.DescriptorForPath(path)
	if !ok {
		return nil, notFound(path)
	}

	if strings.HasSuffix(path, "/batch") {
		return t.batch(desc, body)
	}

	fields, err := toMap(body)
	if err != nil {
		return nil, err
	}

	fields["id"] = newID()

	return jsonResponse(http.StatusCreated, fields, nil)
}

// Put serves updates, echoing the submitted fields merged over a fresh
// instance so the response looks like a full server representation.
func (t *Transport) Put(ctx context.Context, path string, body any) (*internalhttp.Response, error) {
	desc, ok := store.DescriptorForPath(path)
	if !ok {
		return nil, notFound(path)
	}

	id, err := pathID(desc, path)
	if err != nil {
		return nil, err
	}

	full, err := toMap(desc.Fake())
	if err != nil {
		return nil, err
	}

	submitted, err := toMap(body)
	if err != nil {
		return nil, err
	}

	for key, value := range submitted {
		full[key] = value
	}

	full["id"] = id

	return jsonResponse(http.StatusOK, full, nil)
}

// Delete serves deletions, returning the final state of the removed
// resource.
func (t *Transport) Delete(ctx context.Context, path string, query url.Values) (*internalhttp.Response, error) {
	desc, ok := store.DescriptorForPath(path)
	if !ok {
		return nil, notFound(path)
	}

	return t.get(desc, path)
}

func (t *Transport) list(desc store.Descriptor, query url.Values) (*internalhttp.Response, error) {
	perPage := constants.DefaultPageSize

	if raw := query.Get("per_page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed > 0 {
			perPage = parsed
		}
	}

	// The real server caps page size; the synthetic one does too.
	if perPage > constants.MaxPageSize {
		perPage = constants.MaxPageSize
	}

	items := make([]any, perPage)
	for i := range items {
		items[i] = desc.Fake()
	}

	headers := http.Header{}
	headers.Set("X-WP-Total", strconv.Itoa(perPage*fakeTotalPages))
	headers.Set("X-WP-TotalPages", strconv.Itoa(fakeTotalPages))

	return jsonResponse(http.StatusOK, items, headers)
}

func (t *Transport) get(desc store.Descriptor, path string) (*internalhttp.Response, error) {
	instance := desc.Fake()

	if desc.StampID != nil {
		id, err := pathID(desc, path)
		if err != nil {
			return nil, err
		}

		instance = desc.StampID(instance, id)

		return jsonResponse(http.StatusOK, instance, nil)
	}

	// String-identified resource: stamp the raw path segment.
	fields, err := toMap(instance)
	if err != nil {
		return nil, err
	}

	fields["id"] = strings.TrimPrefix(path, desc.Path+"/")

	return jsonResponse(http.StatusOK, fields, nil)
}

func (t *Transport) batch(desc store.Descriptor, body any) (*internalhttp.Response, error) {
	envelope, err := toMap(body)
	if err != nil {
		return nil, err
	}

	response := map[string]any{}

	if create, ok := envelope["create"].([]any); ok && len(create) > 0 {
		results := make([]any, 0, len(create))

		for _, item := range create {
			fields, ok := item.(map[string]any)
			if !ok {
				fields = map[string]any{}
			}

			fields["id"] = newID()
			results = append(results, fields)
		}

		response["create"] = results
	}

	if update, ok := envelope["update"].([]any); ok && len(update) > 0 {
		results := make([]any, 0, len(update))

		for _, item := range update {
			fields, ok := item.(map[string]any)
			if !ok {
				fields = map[string]any{}
			}

			results = append(results, fields)
		}

		response["update"] = results
	}

	if deletes, ok := envelope["delete"].([]any); ok && len(deletes) > 0 {
		results := make([]any, 0, len(deletes))

		for _, raw := range deletes {
			id := int64(0)
			if parsed, ok := raw.(float64); ok {
				id = int64(parsed)
			}

			instance := desc.Fake()
			if desc.StampID != nil {
				instance = desc.StampID(instance, id)
			}

			results = append(results, instance)
		}

		response["delete"] = results
	}

	return jsonResponse(http.StatusOK, response, nil)
}

func pathID(desc store.Descriptor, path string) (int64, error) {
	segment := strings.TrimPrefix(path, desc.Path+"/")

	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil {
		return 0, notFound(path)
	}

	return id, nil
}

func jsonResponse(statusCode int, v any, headers http.Header) (*internalhttp.Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding fake response: %w", err)
	}

	if headers == nil {
		headers = http.Header{}
	}

	return &internalhttp.Response{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       body,
	}, nil
}

func notFound(path string) *store.APIError {
	return &store.APIError{
		Code:    store.ErrorCodeNoRoute,
		Message: fmt.Sprintf("No route was found matching the URL %q", path),
		Data:    store.ErrorData{Status: http.StatusNotFound},
	}
}

// toMap round-trips a value through JSON so field manipulation works the
// same for typed structs and raw maps.
func toMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding fake payload: %w", err)
	}

	fields := map[string]any{}

	err = json.Unmarshal(data, &fields)
	if err != nil {
		return nil, fmt.Errorf("decoding fake payload: %w", err)
	}

	return fields, nil
}

func newID() int64 {
	return int64(gofakeit.Number(1, constants.FakeMaxID))
}
