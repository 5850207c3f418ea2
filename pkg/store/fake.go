package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/storekit-io/wcapi/internal/constants"
)

// Fake* constructors synthesize plausible resource instances for the faking
// layer. Values are random but structurally valid: required fields are always
// set, prices are well-formed decimal strings, and dates fall in a recent
// window so sorted listings look natural.

// FakeProduct returns a synthesized product.
func FakeProduct() Product {
	name := gofakeit.ProductName()
	price := fakePrice(5, 500)
	created := fakePastDate()

	return Product{
		ID:               fakeID(),
		Name:             name,
		Slug:             Ptr(fakeSlug(name)),
		Type:             Ptr(ProductTypeSimple),
		Status:           Ptr(ProductStatusPublish),
		Description:      Ptr(gofakeit.ProductDescription()),
		ShortDescription: Ptr(gofakeit.Sentence(8)),
		SKU:              Ptr(strings.ToUpper(gofakeit.LetterN(3)) + "-" + gofakeit.DigitN(5)),
		Price:            Ptr(price),
		RegularPrice:     Ptr(price),
		OnSale:           Ptr(false),
		Featured:         Ptr(gofakeit.Bool()),
		StockQuantity:    Ptr(gofakeit.Number(0, constants.FakeMaxStock)),
		StockStatus:      Ptr(StockStatusInStock),
		Categories:       []CategoryRef{{ID: fakeID(), Name: Ptr(gofakeit.ProductCategory())}},
		Images: []Image{{
			ID:  Ptr(fakeID()),
			Src: gofakeit.URL(),
			Alt: Ptr(name),
		}},
		DateCreated:  Ptr(created),
		DateModified: Ptr(created.Add(time.Duration(gofakeit.Number(1, 72)) * time.Hour)),
	}
}

// FakeProductCategory returns a synthesized product category.
func FakeProductCategory() ProductCategory {
	name := gofakeit.ProductCategory()

	return ProductCategory{
		ID:          fakeID(),
		Name:        name,
		Slug:        Ptr(fakeSlug(name)),
		Parent:      Ptr(int64(0)),
		Description: Ptr(gofakeit.Sentence(10)),
		Display:     Ptr(CategoryDisplayDefault),
		MenuOrder:   Ptr(0),
		Count:       Ptr(gofakeit.Number(0, 200)),
	}
}

// FakeOrder returns a synthesized order with one to three line items.
func FakeOrder() Order {
	items := make([]LineItem, gofakeit.Number(1, 3))

	var total float64

	for i := range items {
		items[i] = FakeLineItem()
		total += fakeLineTotal(items[i])
	}

	created := fakePastDate()

	return Order{
		ID:            fakeID(),
		Status:        Ptr(OrderStatusProcessing),
		Currency:      Ptr(gofakeit.CurrencyShort()),
		Total:         Ptr(fmt.Sprintf("%.2f", total)),
		TotalTax:      Ptr(fmt.Sprintf("%.2f", total*0.08)),
		CustomerID:    Ptr(fakeID()),
		OrderKey:      Ptr("wc_order_" + uuid.NewString()[:13]),
		PaymentMethod: Ptr("bacs"),
		Billing:       Ptr(FakeAddress()),
		Shipping:      Ptr(FakeAddress()),
		LineItems:     items,
		DateCreated:   Ptr(created),
		DateModified:  Ptr(created),
	}
}

// FakeLineItem returns a synthesized order line.
func FakeLineItem() LineItem {
	price := gofakeit.Price(5, 200)
	qty := gofakeit.Number(1, 4)

	return LineItem{
		ID:        Ptr(fakeID()),
		Name:      Ptr(gofakeit.ProductName()),
		ProductID: fakeID(),
		Quantity:  qty,
		Price:     Ptr(fmt.Sprintf("%.2f", price)),
		Subtotal:  Ptr(fmt.Sprintf("%.2f", price*float64(qty))),
		Total:     Ptr(fmt.Sprintf("%.2f", price*float64(qty))),
		SKU:       Ptr(strings.ToUpper(gofakeit.LetterN(3)) + "-" + gofakeit.DigitN(5)),
	}
}

// FakeTaxRate returns a synthesized tax rate.
func FakeTaxRate() TaxRate {
	country := gofakeit.CountryAbr()

	return TaxRate{
		ID:       fakeID(),
		Name:     country + " Tax",
		Country:  Ptr(country),
		State:    Ptr(gofakeit.StateAbr()),
		Rate:     Ptr(fmt.Sprintf("%.4f", gofakeit.Float64Range(1, 25))),
		Priority: Ptr(1),
		Compound: Ptr(false),
		Shipping: Ptr(gofakeit.Bool()),
		Order:    Ptr(1),
		Class:    Ptr("standard"),
	}
}

// FakeShippingMethod returns a synthesized shipping method.
func FakeShippingMethod() ShippingMethod {
	methods := []ShippingMethod{
		{ID: "flat_rate", Title: "Flat rate", Description: Ptr("Lets you charge a fixed rate for shipping.")},
		{ID: "free_shipping", Title: "Free shipping", Description: Ptr("Free shipping is a special method which can be triggered with coupons and minimum spends.")},
		{ID: "local_pickup", Title: "Local pickup", Description: Ptr("Allows customers to pick up orders themselves.")},
	}

	return methods[gofakeit.Number(0, len(methods)-1)]
}

// FakeCoupon returns a synthesized coupon.
func FakeCoupon() Coupon {
	return Coupon{
		ID:           fakeID(),
		Code:         strings.ToLower(gofakeit.LetterN(4)) + gofakeit.DigitN(2),
		Amount:       Ptr(fakePrice(5, 50)),
		DiscountType: Ptr(DiscountTypeFixedCart),
		Description:  Ptr(gofakeit.Sentence(6)),
		DateExpires:  Ptr(fakeFutureDate()),
		UsageCount:   Ptr(gofakeit.Number(0, 50)),
		UsageLimit:   Ptr(100),
		FreeShipping: Ptr(gofakeit.Bool()),
	}
}

// FakeCustomer returns a synthesized customer.
func FakeCustomer() Customer {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()

	return Customer{
		ID:               fakeID(),
		Email:            gofakeit.Email(),
		FirstName:        Ptr(first),
		LastName:         Ptr(last),
		Username:         Ptr(strings.ToLower(first + "." + last)),
		Billing:          Ptr(FakeAddress()),
		Shipping:         Ptr(FakeAddress()),
		IsPayingCustomer: Ptr(gofakeit.Bool()),
	}
}

// FakeAddress returns a synthesized address.
func FakeAddress() Address {
	addr := gofakeit.Address()

	return Address{
		FirstName: Ptr(gofakeit.FirstName()),
		LastName:  Ptr(gofakeit.LastName()),
		Address1:  Ptr(addr.Street),
		City:      Ptr(addr.City),
		State:     Ptr(addr.State),
		Postcode:  Ptr(addr.Zip),
		Country:   Ptr(addr.Country),
		Email:     Ptr(gofakeit.Email()),
		Phone:     Ptr(gofakeit.Phone()),
	}
}

// FakeSystemStatus returns a synthesized system status report.
func FakeSystemStatus() SystemStatus {
	site := "https://" + gofakeit.DomainName()

	return SystemStatus{
		Environment: SystemEnvironment{
			HomeURL:    site,
			SiteURL:    site,
			Version:    "9.1.2",
			RESTAPIURL: site + "/wp-json/",
		},
		Settings: SystemSettings{
			Currency:     gofakeit.CurrencyShort(),
			TaxesEnabled: true,
		},
	}
}

func fakeID() int64 {
	return int64(gofakeit.Number(1, constants.FakeMaxID))
}

func fakePrice(minVal, maxVal float64) string {
	return fmt.Sprintf("%.2f", gofakeit.Price(minVal, maxVal))
}

func fakeSlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

func fakePastDate() time.Time {
	offset := time.Duration(gofakeit.Number(1, int(constants.FakeDateWindow/time.Minute))) * time.Minute

	return time.Now().UTC().Add(-offset).Truncate(time.Second)
}

func fakeFutureDate() time.Time {
	offset := time.Duration(gofakeit.Number(1, int(constants.FakeDateWindow/time.Minute))) * time.Minute

	return time.Now().UTC().Add(offset).Truncate(time.Second)
}

func fakeLineTotal(item LineItem) float64 {
	var total float64

	if item.Total != nil {
		_, _ = fmt.Sscanf(*item.Total, "%f", &total)
	}

	return total
}
