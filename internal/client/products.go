package client

import (
	"github.com/storekit-io/wcapi/pkg/store"
)

// ProductsClient implements store.ProductsClient.
type ProductsClient struct {
	resource[store.Product]
}

// NewProductsClient creates a new products client.
func NewProductsClient(transport Transport) *ProductsClient {
	return &ProductsClient{resource: newResource[store.Product](transport, "/products", "product")}
}
