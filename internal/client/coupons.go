package client

import (
	"github.com/storekit-io/wcapi/pkg/store"
)

// CouponsClient implements store.CouponsClient.
type CouponsClient struct {
	resource[store.Coupon]
}

// NewCouponsClient creates a new coupons client.
func NewCouponsClient(transport Transport) *CouponsClient {
	return &CouponsClient{resource: newResource[store.Coupon](transport, "/coupons", "coupon")}
}
