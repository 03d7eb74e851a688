package domain

// Catalog views are thin projections of the upstream WooCommerce
// product schema. The upstream schema itself is opaque to us; only the
// fields the storefront renders are mapped.

type Product struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	Description      string   `json:"description,omitempty"`
	ShortDescription string   `json:"shortDescription,omitempty"`
	Price            int64    `json:"price"`     // COP
	SalePrice        *int64   `json:"salePrice"` // COP, nil if not on sale
	OnSale           bool     `json:"onSale"`
	InStock          bool     `json:"inStock"`
	RequiresRx       bool     `json:"requiresRx"` // needs a prescription upload at checkout
	Images           []string `json:"images"`
	Categories       []string `json:"categories"`
}

// EffectivePrice returns the sale price when the product is on sale.
func (p *Product) EffectivePrice() int64 {
	if p.OnSale && p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

type ProductFilter struct {
	Page     int
	PerPage  int
	Search   string
	Category string
}
