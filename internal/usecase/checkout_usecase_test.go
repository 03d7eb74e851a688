package usecase

import (
	"context"
	"testing"
	"time"

	"pharmaplus-backend/config"
	"pharmaplus-backend/internal/domain"
	"pharmaplus-backend/internal/infrastructure/cache"
	"pharmaplus-backend/internal/infrastructure/woocommerce"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutUC(mock *woocommerce.MockStoreAPI) *CheckoutUsecase {
	cfg := &config.Config{
		CacheShippingZonesTTL: time.Minute,
		MaxCartQuantity:       50,
	}
	memCache := cache.NewMemoryCache(time.Minute, time.Minute)
	provider := woocommerce.NewZoneProvider(mock, zerolog.Nop())
	shippingUC := NewShippingUsecase(provider, memCache, cfg)
	return NewCheckoutUsecase(mock, shippingUC, cfg)
}

func validCheckoutReq() CheckoutReq {
	return CheckoutReq{
		Lines: []domain.CartLine{
			{ProductID: 101, Quantity: 2}, // 12900 each
			{ProductID: 102, Quantity: 1}, // on sale at 15500
		},
		Address: domain.CheckoutAddress{
			FirstName:   "Ana",
			LastName:    "García",
			Phone:       "3001234567",
			Email:       "ana@example.com",
			Department:  domain.DepartmentAntioquia,
			City:        "Medellín",
			AddressLine: "Cra 43A # 1-50",
		},
		PaymentMethod: domain.PaymentMethodGateway,
	}
}

func TestCheckout_HappyPath(t *testing.T) {
	mock := woocommerce.NewMockStoreAPI()

	var sentReq *woocommerce.OrderRequest
	mock.OnCreateOrder = func(ctx context.Context, req *woocommerce.OrderRequest) (*woocommerce.OrderJSON, error) {
		sentReq = req
		return &woocommerce.OrderJSON{
			ID: 5001, Number: "5001", Status: "pending",
			PaymentURL:  "https://store.example.com/checkout/order-pay/5001",
			DateCreated: "2026-08-30T10:00:00",
		}, nil
	}

	uc := newCheckoutUC(mock)
	order, err := uc.Checkout(context.Background(), validCheckoutReq())
	require.NoError(t, err)

	// Re-priced from the catalog: 2*12900 + 15500 = 41300, plus the
	// Antioquia rate of 8000.
	assert.Equal(t, int64(41300), order.Subtotal)
	assert.Equal(t, int64(8000), order.ShippingFee)
	assert.Equal(t, int64(49300), order.TotalAmount)
	assert.Equal(t, order.Subtotal+order.ShippingFee, order.TotalAmount)
	assert.Equal(t, "COP", order.Currency)
	assert.Equal(t, "https://store.example.com/checkout/order-pay/5001", order.PaymentURL)

	// The shipping line sent upstream carries the resolved cost.
	require.NotNil(t, sentReq)
	require.Len(t, sentReq.ShippingLines, 1)
	assert.Equal(t, "8000", sentReq.ShippingLines[0].Total)
	assert.Equal(t, "CO-ANT", sentReq.Shipping.State)
	assert.Len(t, sentReq.LineItems, 2)
}

func TestCheckout_EmptyCart(t *testing.T) {
	uc := newCheckoutUC(woocommerce.NewMockStoreAPI())
	req := validCheckoutReq()
	req.Lines = nil

	_, err := uc.Checkout(context.Background(), req)
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCheckout_NoDepartmentSelected(t *testing.T) {
	uc := newCheckoutUC(woocommerce.NewMockStoreAPI())
	req := validCheckoutReq()
	req.Address.Department = ""

	_, err := uc.Checkout(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoLocationSelected)
}

func TestCheckout_UnknownDepartment(t *testing.T) {
	uc := newCheckoutUC(woocommerce.NewMockStoreAPI())
	req := validCheckoutReq()
	req.Address.Department = "CO-XXX"

	_, err := uc.Checkout(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDepartment)
}

func TestCheckout_NoCoverage(t *testing.T) {
	mock := woocommerce.NewMockStoreAPI()
	// Remove the catch-all: only Antioquia remains covered.
	mock.OnListShippingZones = func(ctx context.Context) ([]woocommerce.Zone, error) {
		return []woocommerce.Zone{{ID: 5, Name: "Medellín y Antioquia"}}, nil
	}
	uc := newCheckoutUC(mock)

	req := validCheckoutReq()
	req.Address.Department = "CO-NAR"

	_, err := uc.Checkout(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoCoverage)
}

func TestCheckout_InvalidQuantity(t *testing.T) {
	uc := newCheckoutUC(woocommerce.NewMockStoreAPI())

	req := validCheckoutReq()
	req.Lines[0].Quantity = 0
	_, err := uc.Checkout(context.Background(), req)
	assert.ErrorContains(t, err, "invalid quantity")

	req = validCheckoutReq()
	req.Lines[0].Quantity = 51
	_, err = uc.Checkout(context.Background(), req)
	assert.ErrorContains(t, err, "exceeds maximum")
}

func TestCheckout_UnknownProduct(t *testing.T) {
	uc := newCheckoutUC(woocommerce.NewMockStoreAPI())
	req := validCheckoutReq()
	req.Lines = []domain.CartLine{{ProductID: 999, Quantity: 1}}

	_, err := uc.Checkout(context.Background(), req)
	assert.ErrorContains(t, err, "not found")
}

func TestCheckout_PrescriptionRequired(t *testing.T) {
	mock := woocommerce.NewMockStoreAPI()
	mock.OnGetProduct = func(ctx context.Context, id int64) (*woocommerce.ProductJSON, error) {
		return &woocommerce.ProductJSON{
			ID: id, Name: "Tramadol 50mg", Price: "32000", RegularPrice: "32000",
			StockStatus: "instock",
			MetaData:    []woocommerce.MetaDataJSON{{Key: "_requires_prescription", Value: "yes"}},
		}, nil
	}
	uc := newCheckoutUC(mock)

	req := validCheckoutReq()
	req.Lines = []domain.CartLine{{ProductID: 300, Quantity: 1}}
	req.PrescriptionURL = ""

	_, err := uc.Checkout(context.Background(), req)
	assert.ErrorContains(t, err, "prescription")

	req.PrescriptionURL = "https://cdn.example.com/prescriptions/abc.webp"
	order, err := uc.Checkout(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, req.PrescriptionURL, order.PrescriptionURL)
}

func TestCheckout_OutOfStock(t *testing.T) {
	mock := woocommerce.NewMockStoreAPI()
	mock.OnGetProduct = func(ctx context.Context, id int64) (*woocommerce.ProductJSON, error) {
		return &woocommerce.ProductJSON{
			ID: id, Name: "Agotado", Price: "5000", RegularPrice: "5000",
			StockStatus: "outofstock",
		}, nil
	}
	uc := newCheckoutUC(mock)

	req := validCheckoutReq()
	req.Lines = []domain.CartLine{{ProductID: 101, Quantity: 1}}

	_, err := uc.Checkout(context.Background(), req)
	assert.ErrorContains(t, err, "out of stock")
}
