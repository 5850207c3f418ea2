package client

import (
	"github.com/storekit-io/wcapi/pkg/store"
)

// CustomersClient implements store.CustomersClient.
type CustomersClient struct {
	resource[store.Customer]
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(transport Transport) *CustomersClient {
	return &CustomersClient{resource: newResource[store.Customer](transport, "/customers", "customer")}
}
