package store

import (
	"context"
	"fmt"

	"github.com/storekit-io/wcapi/internal/constants"
)

// PageLister is the slice of a resource client the pagination helpers need.
type PageLister[T any] interface {
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*List[T], error)
}

// PaginationOptions bounds multi-page fetches.
type PaginationOptions struct {
	// MaxPages caps how many pages FetchAllPages will request. Zero means
	// the default cap.
	MaxPages int
}

// PaginationIterator walks a paginated collection item by item, fetching
// pages lazily. Not safe for concurrent use.
type PaginationIterator[T any] struct {
	ctx    context.Context
	lister PageLister[T]
	path   string
	params *QueryParams

	items    []T
	index    int
	page     int
	lastPage int
	started  bool
	err      error
}

// NewPaginationIterator creates an iterator over the collection at path. The
// page and per_page values of params seed the walk; remaining query options
// apply to every fetched page.
func NewPaginationIterator[T any](ctx context.Context, lister PageLister[T], path string, params *QueryParams) *PaginationIterator[T] {
	if params == nil {
		params = NewQueryParams()
	}

	page := params.Page
	if page == 0 {
		page = 1
	}

	return &PaginationIterator[T]{
		ctx:    ctx,
		lister: lister,
		path:   path,
		params: params,
		page:   page,
	}
}

// HasNext reports whether another item is available. The first call fetches
// the first page; a fetch failure makes HasNext return true once so Next can
// surface the error.
func (it *PaginationIterator[T]) HasNext() bool {
	if it.err != nil {
		return true
	}

	if !it.started {
		it.fetch()

		return it.err != nil || len(it.items) > 0
	}

	if it.index < len(it.items) {
		return true
	}

	return it.page <= it.lastPage
}

// Next returns the next item, fetching the next page when the current one is
// exhausted. Returns ErrNoMoreItems after the final item.
func (it *PaginationIterator[T]) Next() (*T, error) {
	if it.err != nil {
		err := it.err
		it.err = nil

		return nil, err
	}

	if !it.started {
		it.fetch()

		if it.err != nil {
			err := it.err
			it.err = nil

			return nil, err
		}
	}

	if it.index >= len(it.items) {
		if it.page > it.lastPage {
			return nil, ErrNoMoreItems
		}

		it.fetch()

		if it.err != nil {
			err := it.err
			it.err = nil

			return nil, err
		}

		if len(it.items) == 0 {
			return nil, ErrNoMoreItems
		}
	}

	item := it.items[it.index]
	it.index++

	return &item, nil
}

func (it *PaginationIterator[T]) fetch() {
	params := *it.params
	params.Page = it.page

	list, err := it.lister.ListWithPath(it.ctx, it.path, &params)
	if err != nil {
		it.err = fmt.Errorf("fetching page %d: %w", it.page, err)

		return
	}

	it.started = true
	it.items = list.Items
	it.index = 0
	it.lastPage = list.Meta.TotalPages
	it.page++
}

// FetchAllPages collects every item of a collection, page by page, up to the
// page cap.
func FetchAllPages[T any](ctx context.Context, lister PageLister[T], path string, params *QueryParams, opts *PaginationOptions) ([]T, error) {
	if params == nil {
		params = NewQueryParams()
	}

	maxPages := constants.MaxPages
	if opts != nil && opts.MaxPages > 0 {
		maxPages = opts.MaxPages
	}

	page := params.Page
	if page == 0 {
		page = 1
	}

	var all []T

	for fetched := 0; fetched < maxPages; fetched++ {
		pageParams := *params
		pageParams.Page = page

		list, err := lister.ListWithPath(ctx, path, &pageParams)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}

		all = append(all, list.Items...)

		if page >= list.Meta.TotalPages || len(list.Items) == 0 {
			break
		}

		page++
	}

	return all, nil
}
