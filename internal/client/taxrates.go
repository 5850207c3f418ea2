package client

import (
	"github.com/storekit-io/wcapi/pkg/store"
)

// TaxRatesClient implements store.TaxRatesClient.
type TaxRatesClient struct {
	resource[store.TaxRate]
}

// NewTaxRatesClient creates a new tax rates client.
func NewTaxRatesClient(transport Transport) *TaxRatesClient {
	return &TaxRatesClient{resource: newResource[store.TaxRate](transport, "/taxes", "tax rate")}
}
