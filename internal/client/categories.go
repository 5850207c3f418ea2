package client

import (
	"github.com/storekit-io/wcapi/pkg/store"
)

// ProductCategoriesClient implements store.ProductCategoriesClient.
type ProductCategoriesClient struct {
	resource[store.ProductCategory]
}

// NewProductCategoriesClient creates a new product categories client.
func NewProductCategoriesClient(transport Transport) *ProductCategoriesClient {
	return &ProductCategoriesClient{
		resource: newResource[store.ProductCategory](transport, "/products/categories", "product category"),
	}
}
