package domain

import "time"

// --- Checkout Entities ---

// CartLine is one line item of a checkout request. Prices are never
// trusted from the client; the checkout flow re-prices every line from
// the live catalog.
type CartLine struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CheckoutAddress carries the delivery destination. Department is the
// ISO 3166-2:CO code used for shipping-zone matching.
type CheckoutAddress struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	City        string `json:"city"`
	AddressLine string `json:"addressLine"`
	Notes       string `json:"notes,omitempty"`
}

// OrderLine is a re-priced line as placed upstream.
type OrderLine struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"` // COP at time of purchase
	LineTotal int64  `json:"lineTotal"`
}

// Order is the storefront's view of an order placed in the upstream
// commerce backend. TotalAmount == Subtotal + ShippingFee exactly.
type Order struct {
	ID              int64           `json:"id"`
	Number          string          `json:"number"`
	Status          string          `json:"status"`
	Lines           []OrderLine     `json:"lines"`
	Subtotal        int64           `json:"subtotal"`
	ShippingFee     int64           `json:"shippingFee"`
	ShippingTitle   string          `json:"shippingTitle"`
	TotalAmount     int64           `json:"totalAmount"`
	Currency        string          `json:"currency"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentURL      string          `json:"paymentUrl,omitempty"` // gateway handoff link
	Address         CheckoutAddress `json:"address"`
	PrescriptionURL string          `json:"prescriptionUrl,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}
