package client

import (
	"context"
	"fmt"

	"github.com/storekit-io/wcapi/pkg/store"
)

// OrdersClient implements store.OrdersClient.
type OrdersClient struct {
	resource[store.Order]
}

// NewOrdersClient creates a new orders client.
func NewOrdersClient(transport Transport) *OrdersClient {
	return &OrdersClient{resource: newResource[store.Order](transport, "/orders", "order")}
}

// UpdateStatus implements store.OrdersClient.UpdateStatus. Only the status
// field travels on the wire, so no other order field can be clobbered.
func (c *OrdersClient) UpdateStatus(ctx context.Context, id int64, status store.OrderStatus) (*store.Order, error) {
	resp, err := c.transport.Put(ctx, fmt.Sprintf("%s/%d", c.path, id), &store.Order{Status: store.Ptr(status)})
	if err != nil {
		return nil, fmt.Errorf("updating order status: %w", err)
	}

	return decode[store.Order](resp.Body, c.name)
}
