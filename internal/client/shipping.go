package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/storekit-io/wcapi/pkg/store"
)

// ShippingMethodsClient implements store.ShippingMethodsClient. Shipping
// methods are read-only and use string identifiers, so the client does not
// embed the generic resource.
type ShippingMethodsClient struct {
	transport Transport
}

// NewShippingMethodsClient creates a new shipping methods client.
func NewShippingMethodsClient(transport Transport) *ShippingMethodsClient {
	return &ShippingMethodsClient{transport: transport}
}

// Get implements store.ShippingMethodsClient.Get.
func (c *ShippingMethodsClient) Get(ctx context.Context, id string) (*store.ShippingMethod, error) {
	if id == "" {
		return nil, store.ErrMissingIdentifier
	}

	resp, err := c.transport.Get(ctx, "/shipping_methods/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting shipping method: %w", err)
	}

	return decode[store.ShippingMethod](resp.Body, "shipping method")
}

// List implements store.ShippingMethodsClient.List.
func (c *ShippingMethodsClient) List(ctx context.Context, params *store.QueryParams) (*store.List[store.ShippingMethod], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.transport.Get(ctx, "/shipping_methods", query)
	if err != nil {
		return nil, fmt.Errorf("listing shipping methods: %w", err)
	}

	var methods []store.ShippingMethod

	err = json.Unmarshal(resp.Body, &methods)
	if err != nil {
		return nil, fmt.Errorf("parsing shipping methods response: %w", err)
	}

	return &store.List[store.ShippingMethod]{
		Items: methods,
		Meta:  listMeta(resp, len(methods)),
	}, nil
}
