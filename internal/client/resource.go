package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/storekit-io/wcapi/internal/constants"
	internalhttp "github.com/storekit-io/wcapi/internal/http"
	"github.com/storekit-io/wcapi/pkg/store"
)

// resource implements the CRUD and batch surface shared by every
// integer-identified resource. Per-resource clients embed it and add their
// extra operations on top.
type resource[T any] struct {
	transport Transport
	path      string
	name      string
}

func newResource[T any](transport Transport, path, name string) resource[T] {
	return resource[T]{transport: transport, path: path, name: name}
}

// Create sends the present fields of item and returns the full server
// representation.
func (r *resource[T]) Create(ctx context.Context, item *T) (*T, error) {
	resp, err := r.transport.Post(ctx, r.path, item)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", r.name, err)
	}

	return decode[T](resp.Body, r.name)
}

// Get fetches one resource by identifier.
func (r *resource[T]) Get(ctx context.Context, id int64, params *store.QueryParams) (*T, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := r.transport.Get(ctx, fmt.Sprintf("%s/%d", r.path, id), query)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", r.name, err)
	}

	return decode[T](resp.Body, r.name)
}

// List fetches one page of the collection.
func (r *resource[T]) List(ctx context.Context, params *store.QueryParams) (*store.List[T], error) {
	return r.ListWithPath(ctx, r.path, params)
}

// ListWithPath fetches one page from an explicit path. Pagination helpers
// use it to walk sub-collections.
func (r *resource[T]) ListWithPath(ctx context.Context, path string, params *store.QueryParams) (*store.List[T], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := r.transport.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing %ss: %w", r.name, err)
	}

	var items []T

	err = json.Unmarshal(resp.Body, &items)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", r.name, err)
	}

	return &store.List[T]{
		Items: items,
		Meta:  listMeta(resp, len(items)),
	}, nil
}

// Update sends the present fields of item as a partial update.
func (r *resource[T]) Update(ctx context.Context, id int64, item *T) (*T, error) {
	resp, err := r.transport.Put(ctx, fmt.Sprintf("%s/%d", r.path, id), item)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", r.name, err)
	}

	return decode[T](resp.Body, r.name)
}

// Delete removes a resource and returns its final state. force skips the
// trash where the resource supports it.
func (r *resource[T]) Delete(ctx context.Context, id int64, force bool) (*T, error) {
	var query url.Values

	if force {
		query = url.Values{"force": []string{"true"}}
	}

	resp, err := r.transport.Delete(ctx, fmt.Sprintf("%s/%d", r.path, id), query)
	if err != nil {
		return nil, fmt.Errorf("deleting %s: %w", r.name, err)
	}

	return decode[T](resp.Body, r.name)
}

// Batch sends grouped create, update, and delete operations in one call.
// Per-operation failures live on the response, never in the returned error.
func (r *resource[T]) Batch(ctx context.Context, request *store.BatchRequest[T]) (*store.BatchResponse[T], error) {
	if request.Size() > constants.MaxBatchItems {
		return nil, fmt.Errorf("%w: %d items, limit %d", store.ErrBatchTooLarge, request.Size(), constants.MaxBatchItems)
	}

	resp, err := r.transport.Post(ctx, r.path+"/batch", request)
	if err != nil {
		return nil, fmt.Errorf("batching %ss: %w", r.name, err)
	}

	var result store.BatchResponse[T]

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing %s batch response: %w", r.name, err)
	}

	return &result, nil
}

func decode[T any](body []byte, name string) (*T, error) {
	var item T

	err := json.Unmarshal(body, &item)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", name, err)
	}

	return &item, nil
}

// listMeta reads the pagination totals from response headers. Servers that
// omit them get single-page semantics.
func listMeta(resp *internalhttp.Response, itemCount int) store.ListMeta {
	meta := store.ListMeta{Total: itemCount, TotalPages: 1}

	if raw := resp.Headers.Get("X-WP-Total"); raw != "" {
		if total, err := strconv.Atoi(raw); err == nil {
			meta.Total = total
		}
	}

	if raw := resp.Headers.Get("X-WP-TotalPages"); raw != "" {
		if pages, err := strconv.Atoi(raw); err == nil {
			meta.TotalPages = pages
		}
	}

	return meta
}
