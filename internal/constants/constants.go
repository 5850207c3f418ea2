package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration and credential files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Nothing is retried unless the caller opts in via Config.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination limits.
const (
	// DefaultPageSize is the server's default number of items per page.
	DefaultPageSize = 10

	// MaxPageSize is the server-declared per_page maximum. Advisory only;
	// the server enforces it.
	MaxPageSize = 100

	// MaxPages bounds fetch-all pagination loops.
	MaxPages = 50
)

// Batch limits.
const (
	// MaxBatchItems is the server-declared maximum number of items in a
	// single batch request. Advisory only.
	MaxBatchItems = 100

	// DefaultBatchConcurrency limits concurrent batch calls in the
	// multi-resource executor.
	DefaultBatchConcurrency = 3
)

// Cache sizing and TTLs.
const (
	// DefaultCacheSize is the default cache entry limit.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the default cache time-to-live.
	DefaultCacheTTL = 5 * time.Minute

	// MaxCacheValueSize is the maximum size for cached values (1MB).
	MaxCacheValueSize = 1024 * 1024
)

// Output format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// Fake data bounds.
const (
	// FakeDateWindow is the window within which synthesized dates fall,
	// counted forward from the time of generation.
	FakeDateWindow = 30 * 24 * time.Hour

	// FakeMaxID is the upper bound for synthesized identifiers.
	FakeMaxID = 99999

	// FakeMaxStock is the upper bound for synthesized stock quantities.
	FakeMaxStock = 250
)

// Display constants.
const (
	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// ErrorBodySnippetLength bounds raw body excerpts in error messages.
	ErrorBodySnippetLength = 200
)
