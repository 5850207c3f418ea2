package store_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit-io/wcapi/pkg/store"
)

var priceFormat = regexp.MustCompile(`^\d+\.\d{2}$`)

func TestFakeProduct(t *testing.T) {
	t.Parallel()

	product := store.FakeProduct()

	assert.Positive(t, product.ID)
	assert.NotEmpty(t, product.Name)
	require.NotNil(t, product.Slug)
	assert.NotContains(t, *product.Slug, " ")
	require.NotNil(t, product.RegularPrice)
	assert.Regexp(t, priceFormat, *product.RegularPrice)
	require.NotNil(t, product.SKU)
	assert.NotEmpty(t, *product.SKU)
	require.NotNil(t, product.StockStatus)
	assert.Equal(t, store.StockStatusInStock, *product.StockStatus)
	require.NotEmpty(t, product.Categories)
	require.NotNil(t, product.DateCreated)
	require.NotNil(t, product.DateModified)
	assert.False(t, product.DateModified.Before(*product.DateCreated))
	assert.True(t, product.DateCreated.Before(time.Now()))
}

func TestFakeOrder(t *testing.T) {
	t.Parallel()

	order := store.FakeOrder()

	assert.Positive(t, order.ID)
	require.NotNil(t, order.Status)
	require.NotNil(t, order.Total)
	assert.Regexp(t, priceFormat, *order.Total)
	require.NotNil(t, order.OrderKey)
	assert.Contains(t, *order.OrderKey, "wc_order_")
	require.NotNil(t, order.Billing)
	require.NotEmpty(t, order.LineItems)

	for _, item := range order.LineItems {
		assert.Positive(t, item.ProductID)
		assert.Positive(t, item.Quantity)
		require.NotNil(t, item.Total)
		assert.Regexp(t, priceFormat, *item.Total)
	}
}

func TestFakeCoupon(t *testing.T) {
	t.Parallel()

	coupon := store.FakeCoupon()

	assert.NotEmpty(t, coupon.Code)
	require.NotNil(t, coupon.DiscountType)
	assert.Equal(t, store.DiscountTypeFixedCart, *coupon.DiscountType)
	require.NotNil(t, coupon.DateExpires)
	assert.True(t, coupon.DateExpires.After(time.Now()))
}

func TestFakeCustomer(t *testing.T) {
	t.Parallel()

	customer := store.FakeCustomer()

	assert.Positive(t, customer.ID)
	assert.Contains(t, customer.Email, "@")
	require.NotNil(t, customer.Billing)
	assert.NotNil(t, customer.Billing.Country)
}

func TestFakeShippingMethod(t *testing.T) {
	t.Parallel()

	known := map[string]bool{
		"flat_rate":     true,
		"free_shipping": true,
		"local_pickup":  true,
	}

	method := store.FakeShippingMethod()

	assert.True(t, known[method.ID], "unexpected method %q", method.ID)
	assert.NotEmpty(t, method.Title)
}

func TestDescriptors_EveryEntryCanFake(t *testing.T) {
	t.Parallel()

	for _, desc := range store.Descriptors() {
		desc := desc
		t.Run(desc.Name, func(t *testing.T) {
			t.Parallel()

			require.NotNil(t, desc.Fake)
			assert.NotNil(t, desc.Fake())

			if desc.StampID != nil {
				stamped := desc.StampID(desc.Fake(), 12345)
				assert.NotNil(t, stamped)
			}
		})
	}
}
