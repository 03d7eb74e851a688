// Package woocommerce talks to the upstream WooCommerce/WordPress REST
// API: the storefront's catalog, shipping-zone rules, marketing pages
// and order creation all live there. This backend owns no data of its
// own except the pastillero.
package woocommerce

import "context"

// StoreAPI defines the upstream operations this backend depends on.
// The abstraction allows a mock implementation in tests and the real
// HTTP implementation in production.
type StoreAPI interface {
	// ListShippingZones returns all zones in the backend's native order.
	ListShippingZones(ctx context.Context) ([]Zone, error)

	// ListZoneLocations returns the location codes a zone explicitly serves.
	ListZoneLocations(ctx context.Context, zoneID int) ([]ZoneLocation, error)

	// ListZoneMethods returns a zone's shipping methods, enabled or not.
	ListZoneMethods(ctx context.Context, zoneID int) ([]ZoneMethod, error)

	// ListProducts returns a page of the catalog.
	ListProducts(ctx context.Context, page, perPage int, search, category string) ([]ProductJSON, error)

	// GetProductBySlug returns a single product, or nil when not found.
	GetProductBySlug(ctx context.Context, slug string) (*ProductJSON, error)

	// GetProduct returns a single product by ID.
	GetProduct(ctx context.Context, id int64) (*ProductJSON, error)

	// ListCategories returns the product categories.
	ListCategories(ctx context.Context) ([]CategoryJSON, error)

	// GetPageBySlug returns a WordPress page, or nil when not found.
	GetPageBySlug(ctx context.Context, slug string) (*PageJSON, error)

	// CreateOrder places an order upstream and returns the created order.
	CreateOrder(ctx context.Context, req *OrderRequest) (*OrderJSON, error)
}

// ============================================================================
// Wire Types (match the WooCommerce v3 / WordPress v2 REST shapes)
// ============================================================================

// Zone is a row of GET /wc/v3/shipping/zones.
type Zone struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// ZoneLocation is a row of GET /wc/v3/shipping/zones/{id}/locations.
// Code is "COUNTRY:STATE" for state-type entries, e.g. "CO:ANT".
type ZoneLocation struct {
	Code string `json:"code"`
	Type string `json:"type"` // country | state | postcode | continent
}

// ZoneMethod is a row of GET /wc/v3/shipping/zones/{id}/methods.
// The cost lives inside a carrier-specific settings payload; which
// field carries it depends on MethodID. Normalization resolves that
// once so the resolver only ever sees an integer cost.
type ZoneMethod struct {
	InstanceID  int            `json:"instance_id"`
	Title       string         `json:"title"`
	Order       int            `json:"order"`
	Enabled     bool           `json:"enabled"`
	MethodID    string         `json:"method_id"` // flat_rate | free_shipping | local_pickup | ...
	MethodTitle string         `json:"method_title"`
	Settings    MethodSettings `json:"settings"`
}

// MethodSettings is the subset of the settings payload we read.
type MethodSettings struct {
	Cost *SettingField `json:"cost"`
}

// SettingField is a single WooCommerce setting entry.
type SettingField struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProductJSON is the subset of GET /wc/v3/products we project.
// Monetary fields arrive as decimal strings.
type ProductJSON struct {
	ID               int64          `json:"id"`
	Name             string         `json:"name"`
	Slug             string         `json:"slug"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"short_description"`
	Price            string         `json:"price"`
	RegularPrice     string         `json:"regular_price"`
	SalePrice        string         `json:"sale_price"`
	OnSale           bool           `json:"on_sale"`
	StockStatus      string         `json:"stock_status"`
	Images           []ImageJSON    `json:"images"`
	Categories       []CategoryJSON `json:"categories"`
	MetaData         []MetaDataJSON `json:"meta_data"`
}

type ImageJSON struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type CategoryJSON struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

type MetaDataJSON struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// PageJSON is the subset of GET /wp/v2/pages we project.
type PageJSON struct {
	ID       int64        `json:"id"`
	Slug     string       `json:"slug"`
	Title    RenderedJSON `json:"title"`
	Content  RenderedJSON `json:"content"`
	Modified string       `json:"modified"`
}

type RenderedJSON struct {
	Rendered string `json:"rendered"`
}

// OrderRequest is the body of POST /wc/v3/orders. Totals are sent as
// decimal strings per the upstream contract; they are derived from
// exact integer COP amounts on our side.
type OrderRequest struct {
	PaymentMethod      string             `json:"payment_method"`
	PaymentMethodTitle string             `json:"payment_method_title"`
	SetPaid            bool               `json:"set_paid"`
	Billing            AddressJSON        `json:"billing"`
	Shipping           AddressJSON        `json:"shipping"`
	LineItems          []LineItemJSON     `json:"line_items"`
	ShippingLines      []ShippingLineJSON `json:"shipping_lines"`
	CustomerNote       string             `json:"customer_note,omitempty"`
	MetaData           []MetaDataJSON     `json:"meta_data,omitempty"`
}

type AddressJSON struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type LineItemJSON struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type ShippingLineJSON struct {
	MethodID    string `json:"method_id"`
	MethodTitle string `json:"method_title"`
	Total       string `json:"total"`
}

// OrderJSON is the subset of the created order we read back.
type OrderJSON struct {
	ID          int64               `json:"id"`
	Number      string              `json:"number"`
	Status      string              `json:"status"`
	Currency    string              `json:"currency"`
	Total       string              `json:"total"`
	PaymentURL  string              `json:"payment_url"`
	DateCreated string              `json:"date_created"`
	LineItems   []OrderLineItemJSON `json:"line_items"`
}

type OrderLineItemJSON struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Total     string `json:"total"`
}
