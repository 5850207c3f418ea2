// Package store provides types, interfaces, and helpers for working with a
// WooCommerce-style store REST API.
//
// # Overview
//
// The store package defines the domain types (e.g., Product, ProductCategory,
// Order, TaxRate, Coupon) and the interfaces for resource-oriented clients
// (e.g., ProductsClient, OrdersClient). A concrete implementation of these
// clients is provided by the storeclient package, which wires configuration,
// transport, credentials, and the faking substitution layer. Most consumers
// should import storeclient to construct a client and then interact with the
// resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/storekit-io/wcapi/pkg/store"
//	  "github.com/storekit-io/wcapi/pkg/storeclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := storeclient.New(ctx, &store.Config{
//	    Endpoint:       "https://shop.example.com",
//	    ConsumerKey:    "ck_xxx",
//	    ConsumerSecret: "cs_xxx",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of products
//	  products, err := cli.Products().List(ctx, store.NewQueryParams().WithPerPage(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = products
//	}
//
// # Queries and pagination
//
// Use QueryParams to express common list options (context, page, per_page,
// search, include, exclude, order, orderby, plus resource-specific filters).
// The package also provides helpers for iterating or collecting paginated
// results:
//
//	it := store.NewPaginationIterator(ctx, cli.Products(), "/products", store.NewQueryParams())
//	for it.HasNext() {
//	  p, err := it.Next()
//	  if err != nil { break }
//	  _ = p
//	}
//
// # Faking
//
// Every client can run entirely offline: construct it with Config.Faking set,
// or mark a single call with store.WithFaking(ctx). Faked calls return
// synthesized data through the exact same signatures and types as real calls,
// so callers cannot distinguish the two paths structurally.
//
// # Errors
//
// API errors are represented by APIError. Helpers such as IsNotFound,
// IsUnauthorized, and IsForbidden make it easy to branch on common cases.
// Batch partial failures are never raised as errors; inspect the
// BatchResponse instead.
package store
