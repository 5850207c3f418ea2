package store

import "strings"

// Descriptor binds a resource type to its collection path and to the hooks
// the faking layer needs to synthesize instances. The concrete clients and
// the fake transport both consult the same registry so the two paths cannot
// drift apart.
type Descriptor struct {
	// Path is the collection path relative to the API root, e.g. "/products".
	Path string

	// Name is the resource name used in logs.
	Name string

	// Singleton marks paths that return a single object with no collection
	// semantics, e.g. "/system_status".
	Singleton bool

	// Batchable marks resources exposing a "<path>/batch" endpoint.
	Batchable bool

	// Fake synthesizes one plausible instance of the resource.
	Fake func() any

	// StampID overwrites the instance identifier. Nil for resources with
	// string identifiers or no identifier.
	StampID func(v any, id int64) any
}

var descriptors = []Descriptor{
	{
		Path:      "/products/categories",
		Name:      "product category",
		Batchable: true,
		Fake:      func() any { return FakeProductCategory() },
		StampID: func(v any, id int64) any {
			c, ok := v.(ProductCategory)
			if ok {
				c.ID = id
			}

			return c
		},
	},
	{
		Path:      "/products",
		Name:      "product",
		Batchable: true,
		Fake:      func() any { return FakeProduct() },
		StampID: func(v any, id int64) any {
			p, ok := v.(Product)
			if ok {
				p.ID = id
			}

			return p
		},
	},
	{
		Path:      "/orders",
		Name:      "order",
		Batchable: true,
		Fake:      func() any { return FakeOrder() },
		StampID: func(v any, id int64) any {
			o, ok := v.(Order)
			if ok {
				o.ID = id
			}

			return o
		},
	},
	{
		Path:      "/taxes",
		Name:      "tax rate",
		Batchable: true,
		Fake:      func() any { return FakeTaxRate() },
		StampID: func(v any, id int64) any {
			t, ok := v.(TaxRate)
			if ok {
				t.ID = id
			}

			return t
		},
	},
	{
		Path: "/shipping_methods",
		Name: "shipping method",
		Fake: func() any { return FakeShippingMethod() },
	},
	{
		Path:      "/coupons",
		Name:      "coupon",
		Batchable: true,
		Fake:      func() any { return FakeCoupon() },
		StampID: func(v any, id int64) any {
			c, ok := v.(Coupon)
			if ok {
				c.ID = id
			}

			return c
		},
	},
	{
		Path:      "/customers",
		Name:      "customer",
		Batchable: true,
		Fake:      func() any { return FakeCustomer() },
		StampID: func(v any, id int64) any {
			c, ok := v.(Customer)
			if ok {
				c.ID = id
			}

			return c
		},
	},
	{
		Path:      "/system_status",
		Name:      "system status",
		Singleton: true,
		Fake:      func() any { return FakeSystemStatus() },
	},
}

// Descriptors returns the full resource registry.
func Descriptors() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)

	return out
}

// DescriptorForPath resolves a request path to its resource descriptor.
// Matching is by longest registered prefix so "/products/categories/7" binds
// to the category resource, not the product resource.
func DescriptorForPath(path string) (Descriptor, bool) {
	var (
		best  Descriptor
		found bool
	)

	for _, d := range descriptors {
		if path != d.Path && !strings.HasPrefix(path, d.Path+"/") {
			continue
		}

		if !found || len(d.Path) > len(best.Path) {
			best = d
			found = true
		}
	}

	return best, found
}
