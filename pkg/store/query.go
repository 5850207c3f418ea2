package store

import (
	"net/url"
	"strconv"
	"strings"
)

// RequestContext is the server-side scope controlling which fields appear in
// a response.
type RequestContext string

const (
	// ContextView is the default, public scope.
	ContextView RequestContext = "view"

	// ContextEdit exposes writable and hidden fields.
	ContextEdit RequestContext = "edit"
)

// SortOrder is the direction of a sorted listing.
type SortOrder string

const (
	// SortAsc sorts ascending.
	SortAsc SortOrder = "asc"

	// SortDesc sorts descending.
	SortDesc SortOrder = "desc"
)

// Common orderby vocabulary. Resources may accept additional values; the
// server rejects unsupported ones.
const (
	OrderByDate    = "date"
	OrderByID      = "id"
	OrderByInclude = "include"
	OrderByTitle   = "title"
	OrderBySlug    = "slug"
	OrderByName    = "name"
	OrderByCount   = "count"
)

// QueryParams represents query parameters for list and get requests. Fields
// map 1:1 to documented wire parameter names; absent optional fields are
// omitted from the request. No cross-field validation happens locally,
// malformed combinations surface as server errors.
type QueryParams struct {
	// Context selects the response field scope (view or edit).
	Context RequestContext

	// Page is the 1-based page of the collection.
	Page int

	// PerPage is the requested page size. The server caps it at its
	// declared maximum; the bound is advisory on the client.
	PerPage int

	// Search limits results to those matching a string.
	Search string

	// Include limits results to the given identifiers.
	Include []int64

	// Exclude removes the given identifiers from results.
	Exclude []int64

	// Order is the sort direction (asc or desc).
	Order SortOrder

	// OrderBy is the attribute to sort by.
	OrderBy string

	// Offset skips the given number of items. Mutually redundant with
	// Page; the server decides precedence.
	Offset int

	// Filters holds resource-specific parameters (parent, slug, product,
	// hide_empty, class, status, ...). List values serialize comma-joined.
	Filters map[string][]string
}

// NewQueryParams creates a new QueryParams with initialized maps.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithContext sets the request context scope.
func (q *QueryParams) WithContext(ctx RequestContext) *QueryParams {
	q.Context = ctx

	return q
}

// WithPage sets the page number.
func (q *QueryParams) WithPage(page int) *QueryParams {
	q.Page = page

	return q
}

// WithPerPage sets the page size.
func (q *QueryParams) WithPerPage(perPage int) *QueryParams {
	q.PerPage = perPage

	return q
}

// WithSearch sets the search string.
func (q *QueryParams) WithSearch(search string) *QueryParams {
	q.Search = search

	return q
}

// WithInclude appends identifiers to the include set.
func (q *QueryParams) WithInclude(ids ...int64) *QueryParams {
	q.Include = append(q.Include, ids...)

	return q
}

// WithExclude appends identifiers to the exclude set.
func (q *QueryParams) WithExclude(ids ...int64) *QueryParams {
	q.Exclude = append(q.Exclude, ids...)

	return q
}

// WithOrder sets the sort direction.
func (q *QueryParams) WithOrder(order SortOrder) *QueryParams {
	q.Order = order

	return q
}

// WithOrderBy sets the sort attribute.
func (q *QueryParams) WithOrderBy(orderBy string) *QueryParams {
	q.OrderBy = orderBy

	return q
}

// WithOffset sets the collection offset.
func (q *QueryParams) WithOffset(offset int) *QueryParams {
	q.Offset = offset

	return q
}

// WithFilter appends values to a resource-specific filter.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}

// ToValues converts QueryParams to url.Values, omitting absent fields.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Context != "" {
		values.Set("context", string(q.Context))
	}

	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	if q.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(q.PerPage))
	}

	if q.Search != "" {
		values.Set("search", q.Search)
	}

	if len(q.Include) > 0 {
		values.Set("include", joinIDs(q.Include))
	}

	if len(q.Exclude) > 0 {
		values.Set("exclude", joinIDs(q.Exclude))
	}

	if q.Order != "" {
		values.Set("order", string(q.Order))
	}

	if q.OrderBy != "" {
		values.Set("orderby", q.OrderBy)
	}

	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}

	for key, filterValues := range q.Filters {
		if len(filterValues) > 0 {
			values.Set(key, strings.Join(filterValues, ","))
		}
	}

	return values
}

// joinIDs serializes identifiers as a comma-joined decimal string.
func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}

	return strings.Join(parts, ",")
}
