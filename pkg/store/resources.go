package store

import (
	"encoding/json"
	"fmt"
	"time"
)

// Models in this package are value objects with pointer-typed optional
// fields: decoding tolerates partial payloads (a missing key leaves the field
// nil), and encoding emits only present fields so partial updates never
// overwrite server defaults. Fields a resource declares required are plain
// values and always emitted. Mutation is by copy, never in place.

// ProductType classifies a product.
type ProductType string

const (
	ProductTypeSimple   ProductType = "simple"
	ProductTypeGrouped  ProductType = "grouped"
	ProductTypeExternal ProductType = "external"
	ProductTypeVariable ProductType = "variable"
)

// UnmarshalJSON decodes unknown wire values to the documented default
// (simple) instead of failing.
func (t *ProductType) UnmarshalJSON(data []byte) error {
	var s string

	err := json.Unmarshal(data, &s)
	if err != nil {
		return fmt.Errorf("decoding product type: %w", err)
	}

	switch v := ProductType(s); v {
	case ProductTypeSimple, ProductTypeGrouped, ProductTypeExternal, ProductTypeVariable:
		*t = v
	default:
		*t = ProductTypeSimple
	}

	return nil
}

// ProductStatus is the publication state of a product.
type ProductStatus string

const (
	ProductStatusDraft   ProductStatus = "draft"
	ProductStatusPending ProductStatus = "pending"
	ProductStatusPrivate ProductStatus = "private"
	ProductStatusPublish ProductStatus = "publish"
)

// UnmarshalJSON decodes unknown wire values to the documented default
// (publish) instead of failing.
func (s *ProductStatus) UnmarshalJSON(data []byte) error {
	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("decoding product status: %w", err)
	}

	switch v := ProductStatus(raw); v {
	case ProductStatusDraft, ProductStatusPending, ProductStatusPrivate, ProductStatusPublish:
		*s = v
	default:
		*s = ProductStatusPublish
	}

	return nil
}

// StockStatus is the inventory state of a product.
type StockStatus string

const (
	StockStatusInStock     StockStatus = "instock"
	StockStatusOutOfStock  StockStatus = "outofstock"
	StockStatusOnBackorder StockStatus = "onbackorder"
)

// UnmarshalJSON decodes unknown wire values to the documented default
// (instock) instead of failing.
func (s *StockStatus) UnmarshalJSON(data []byte) error {
	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("decoding stock status: %w", err)
	}

	switch v := StockStatus(raw); v {
	case StockStatusInStock, StockStatusOutOfStock, StockStatusOnBackorder:
		*s = v
	default:
		*s = StockStatusInStock
	}

	return nil
}

// Product represents a store product.
type Product struct {
	ID               int64          `json:"id,omitempty"                yaml:"id,omitempty"`
	Name             string         `json:"name"                        yaml:"name"`
	Slug             *string        `json:"slug,omitempty"              yaml:"slug,omitempty"`
	Type             *ProductType   `json:"type,omitempty"              yaml:"type,omitempty"`
	Status           *ProductStatus `json:"status,omitempty"            yaml:"status,omitempty"`
	Description      *string        `json:"description,omitempty"       yaml:"description,omitempty"`
	ShortDescription *string        `json:"short_description,omitempty" yaml:"short_description,omitempty"`
	SKU              *string        `json:"sku,omitempty"               yaml:"sku,omitempty"`
	Price            *string        `json:"price,omitempty"             yaml:"price,omitempty"`
	RegularPrice     *string        `json:"regular_price,omitempty"     yaml:"regular_price,omitempty"`
	SalePrice        *string        `json:"sale_price,omitempty"        yaml:"sale_price,omitempty"`
	OnSale           *bool          `json:"on_sale,omitempty"           yaml:"on_sale,omitempty"`
	Featured         *bool          `json:"featured,omitempty"          yaml:"featured,omitempty"`
	StockQuantity    *int           `json:"stock_quantity,omitempty"    yaml:"stock_quantity,omitempty"`
	StockStatus      *StockStatus   `json:"stock_status,omitempty"      yaml:"stock_status,omitempty"`
	Categories       []CategoryRef  `json:"categories,omitempty"        yaml:"categories,omitempty"`
	Images           []Image        `json:"images,omitempty"            yaml:"images,omitempty"`
	MetaData         []MetaData     `json:"meta_data,omitempty"         yaml:"meta_data,omitempty"`
	DateCreated      *time.Time     `json:"date_created,omitempty"      yaml:"date_created,omitempty"`
	DateModified     *time.Time     `json:"date_modified,omitempty"     yaml:"date_modified,omitempty"`
}

// CategoryRef is the nested category reference carried by a product.
type CategoryRef struct {
	ID   int64   `json:"id"             yaml:"id"`
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
	Slug *string `json:"slug,omitempty" yaml:"slug,omitempty"`
}

// CategoryDisplay controls how a category archive renders.
type CategoryDisplay string

const (
	CategoryDisplayDefault  CategoryDisplay = "default"
	CategoryDisplayProducts CategoryDisplay = "products"
	CategoryDisplaySubcats  CategoryDisplay = "subcategories"
	CategoryDisplayBoth     CategoryDisplay = "both"
)

// UnmarshalJSON decodes unknown wire values to the documented default
// instead of failing.
func (d *CategoryDisplay) UnmarshalJSON(data []byte) error {
	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("decoding category display: %w", err)
	}

	switch v := CategoryDisplay(raw); v {
	case CategoryDisplayDefault, CategoryDisplayProducts, CategoryDisplaySubcats, CategoryDisplayBoth:
		*d = v
	default:
		*d = CategoryDisplayDefault
	}

	return nil
}

// ProductCategory represents a product category term.
type ProductCategory struct {
	ID          int64            `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        string           `json:"name"                  yaml:"name"`
	Slug        *string          `json:"slug,omitempty"        yaml:"slug,omitempty"`
	Parent      *int64           `json:"parent,omitempty"      yaml:"parent,omitempty"`
	Description *string          `json:"description,omitempty" yaml:"description,omitempty"`
	Display     *CategoryDisplay `json:"display,omitempty"     yaml:"display,omitempty"`
	Image       *Image           `json:"image,omitempty"       yaml:"image,omitempty"`
	MenuOrder   *int             `json:"menu_order,omitempty"  yaml:"menu_order,omitempty"`
	Count       *int             `json:"count,omitempty"       yaml:"count,omitempty"`
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusOnHold     OrderStatus = "on-hold"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
	OrderStatusFailed     OrderStatus = "failed"
	OrderStatusTrash      OrderStatus = "trash"
)

// UnmarshalJSON decodes unknown wire values to the documented default
// (pending) instead of failing.
func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("decoding order status: %w", err)
	}

	switch v := OrderStatus(raw); v {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusOnHold, OrderStatusCompleted,
		OrderStatusCancelled, OrderStatusRefunded, OrderStatusFailed, OrderStatusTrash:
		*s = v
	default:
		*s = OrderStatusPending
	}

	return nil
}

// LineItem is one purchasable line of an order.
type LineItem struct {
	ID        *int64  `json:"id,omitempty"       yaml:"id,omitempty"`
	Name      *string `json:"name,omitempty"     yaml:"name,omitempty"`
	ProductID int64   `json:"product_id"         yaml:"product_id"`
	Quantity  int     `json:"quantity"           yaml:"quantity"`
	Subtotal  *string `json:"subtotal,omitempty" yaml:"subtotal,omitempty"`
	Total     *string `json:"total,omitempty"    yaml:"total,omitempty"`
	SKU       *string `json:"sku,omitempty"      yaml:"sku,omitempty"`
	Price     *string `json:"price,omitempty"    yaml:"price,omitempty"`
}

// Order represents a customer order.
type Order struct {
	ID            int64        `json:"id,omitempty"             yaml:"id,omitempty"`
	Status        *OrderStatus `json:"status,omitempty"         yaml:"status,omitempty"`
	Currency      *string      `json:"currency,omitempty"       yaml:"currency,omitempty"`
	Total         *string      `json:"total,omitempty"          yaml:"total,omitempty"`
	TotalTax      *string      `json:"total_tax,omitempty"      yaml:"total_tax,omitempty"`
	CustomerID    *int64       `json:"customer_id,omitempty"    yaml:"customer_id,omitempty"`
	OrderKey      *string      `json:"order_key,omitempty"      yaml:"order_key,omitempty"`
	CustomerNote  *string      `json:"customer_note,omitempty"  yaml:"customer_note,omitempty"`
	PaymentMethod *string      `json:"payment_method,omitempty" yaml:"payment_method,omitempty"`
	SetPaid       *bool        `json:"set_paid,omitempty"       yaml:"set_paid,omitempty"`
	Billing       *Address     `json:"billing,omitempty"        yaml:"billing,omitempty"`
	Shipping      *Address     `json:"shipping,omitempty"       yaml:"shipping,omitempty"`
	LineItems     []LineItem   `json:"line_items,omitempty"     yaml:"line_items,omitempty"`
	MetaData      []MetaData   `json:"meta_data,omitempty"      yaml:"meta_data,omitempty"`
	DateCreated   *time.Time   `json:"date_created,omitempty"   yaml:"date_created,omitempty"`
	DateModified  *time.Time   `json:"date_modified,omitempty"  yaml:"date_modified,omitempty"`
}

// TaxRate represents a single tax rate row.
type TaxRate struct {
	ID       int64   `json:"id,omitempty"       yaml:"id,omitempty"`
	Name     string  `json:"name"               yaml:"name"`
	Country  *string `json:"country,omitempty"  yaml:"country,omitempty"`
	State    *string `json:"state,omitempty"    yaml:"state,omitempty"`
	Rate     *string `json:"rate,omitempty"     yaml:"rate,omitempty"`
	Priority *int    `json:"priority,omitempty" yaml:"priority,omitempty"`
	Compound *bool   `json:"compound,omitempty" yaml:"compound,omitempty"`
	Shipping *bool   `json:"shipping,omitempty" yaml:"shipping,omitempty"`
	Order    *int    `json:"order,omitempty"    yaml:"order,omitempty"`
	Class    *string `json:"class,omitempty"    yaml:"class,omitempty"`
}

// ShippingMethod represents a shipping method definition. Shipping methods
// are read-only and keyed by string identifiers (e.g. "flat_rate").
type ShippingMethod struct {
	ID          string  `json:"id"                    yaml:"id"`
	Title       string  `json:"title"                 yaml:"title"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// DiscountType classifies how a coupon applies its amount.
type DiscountType string

const (
	DiscountTypeFixedCart    DiscountType = "fixed_cart"
	DiscountTypePercent      DiscountType = "percent"
	DiscountTypeFixedProduct DiscountType = "fixed_product"
)

// UnmarshalJSON decodes unknown wire values to the documented default
// (fixed_cart) instead of failing.
func (d *DiscountType) UnmarshalJSON(data []byte) error {
	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("decoding discount type: %w", err)
	}

	switch v := DiscountType(raw); v {
	case DiscountTypeFixedCart, DiscountTypePercent, DiscountTypeFixedProduct:
		*d = v
	default:
		*d = DiscountTypeFixedCart
	}

	return nil
}

// Coupon represents a discount coupon.
type Coupon struct {
	ID               int64         `json:"id,omitempty"                 yaml:"id,omitempty"`
	Code             string        `json:"code"                         yaml:"code"`
	Amount           *string       `json:"amount,omitempty"             yaml:"amount,omitempty"`
	DiscountType     *DiscountType `json:"discount_type,omitempty"      yaml:"discount_type,omitempty"`
	Description      *string       `json:"description,omitempty"        yaml:"description,omitempty"`
	DateExpires      *time.Time    `json:"date_expires,omitempty"       yaml:"date_expires,omitempty"`
	UsageCount       *int          `json:"usage_count,omitempty"        yaml:"usage_count,omitempty"`
	UsageLimit       *int          `json:"usage_limit,omitempty"        yaml:"usage_limit,omitempty"`
	FreeShipping     *bool         `json:"free_shipping,omitempty"      yaml:"free_shipping,omitempty"`
	MinimumAmount    *string       `json:"minimum_amount,omitempty"     yaml:"minimum_amount,omitempty"`
	ExcludeSaleItems *bool         `json:"exclude_sale_items,omitempty" yaml:"exclude_sale_items,omitempty"`
}

// Customer represents a registered customer.
type Customer struct {
	ID               int64    `json:"id,omitempty"                 yaml:"id,omitempty"`
	Email            string   `json:"email"                        yaml:"email"`
	FirstName        *string  `json:"first_name,omitempty"         yaml:"first_name,omitempty"`
	LastName         *string  `json:"last_name,omitempty"          yaml:"last_name,omitempty"`
	Username         *string  `json:"username,omitempty"           yaml:"username,omitempty"`
	Billing          *Address `json:"billing,omitempty"            yaml:"billing,omitempty"`
	Shipping         *Address `json:"shipping,omitempty"           yaml:"shipping,omitempty"`
	IsPayingCustomer *bool    `json:"is_paying_customer,omitempty" yaml:"is_paying_customer,omitempty"`
	AvatarURL        *string  `json:"avatar_url,omitempty"         yaml:"avatar_url,omitempty"`
}

// SystemStatus is the store environment report.
type SystemStatus struct {
	Environment SystemEnvironment `json:"environment" yaml:"environment"`
	Settings    SystemSettings    `json:"settings"    yaml:"settings"`
}

// SystemEnvironment describes the remote store installation.
type SystemEnvironment struct {
	HomeURL    string `json:"home_url"    yaml:"home_url"`
	SiteURL    string `json:"site_url"    yaml:"site_url"`
	Version    string `json:"version"     yaml:"version"`
	RESTAPIURL string `json:"rest_api_url" yaml:"rest_api_url"`
}

// SystemSettings describes store-level settings.
type SystemSettings struct {
	Currency     string `json:"currency"      yaml:"currency"`
	TaxesEnabled bool   `json:"taxes_enabled" yaml:"taxes_enabled"`
}
