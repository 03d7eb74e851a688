package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"pharmaplus-backend/config"
	"pharmaplus-backend/internal/domain"
	"pharmaplus-backend/internal/infrastructure/woocommerce"
	"pharmaplus-backend/pkg/utils"
)

// Validation states the storefront corrects with user input. These
// block submission with a prompt; they are not system faults and are
// not logged as errors.
var (
	ErrCartEmpty          = errors.New("cart is empty")
	ErrNoLocationSelected = errors.New("delivery department not selected")
	ErrNoCoverage         = errors.New("no shipping coverage for the selected department")
	ErrInvalidDepartment  = errors.New("unknown department code")
)

type CheckoutReq struct {
	Lines           []domain.CartLine      `json:"lines"`
	Address         domain.CheckoutAddress `json:"address"`
	PaymentMethod   string                 `json:"paymentMethod"`
	PrescriptionURL string                 `json:"prescriptionUrl,omitempty"`
}

type CheckoutUsecase struct {
	store      woocommerce.StoreAPI
	shippingUC *ShippingUsecase
	cfg        *config.Config
}

func NewCheckoutUsecase(store woocommerce.StoreAPI, shippingUC *ShippingUsecase, cfg *config.Config) *CheckoutUsecase {
	return &CheckoutUsecase{
		store:      store,
		shippingUC: shippingUC,
		cfg:        cfg,
	}
}

// Checkout re-prices the cart from the live catalog, resolves the
// shipping rate for the delivery department, and places the order
// upstream. Totals are integer COP end to end:
// total = subtotal + shipping, exactly.
func (u *CheckoutUsecase) Checkout(ctx context.Context, req CheckoutReq) (*domain.Order, error) {
	if len(req.Lines) == 0 {
		return nil, ErrCartEmpty
	}

	// 1. Validate the destination before pricing anything.
	dept := req.Address.Department
	if dept == "" {
		return nil, ErrNoLocationSelected
	}
	if !domain.IsValidDepartment(dept) {
		return nil, ErrInvalidDepartment
	}

	// 2. Re-price every line from the live catalog. Client-supplied
	// prices are never trusted.
	var subtotal int64
	orderLines := make([]domain.OrderLine, 0, len(req.Lines))
	needsRx := false

	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity for product %d", line.ProductID)
		}
		if line.Quantity > u.cfg.MaxCartQuantity {
			return nil, fmt.Errorf("quantity exceeds maximum for product %d", line.ProductID)
		}

		raw, err := u.store.GetProduct(ctx, line.ProductID)
		if err != nil || raw == nil {
			return nil, fmt.Errorf("product %d not found", line.ProductID)
		}
		product := woocommerce.ToProduct(*raw)
		if !product.InStock {
			return nil, fmt.Errorf("product %s is out of stock", product.Name)
		}
		if product.RequiresRx {
			needsRx = true
		}

		unitPrice := product.EffectivePrice()
		lineTotal := unitPrice * int64(line.Quantity)
		subtotal += lineTotal

		orderLines = append(orderLines, domain.OrderLine{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
			LineTotal: lineTotal,
		})
	}

	if needsRx && req.PrescriptionURL == "" {
		return nil, fmt.Errorf("order contains prescription items: prescription upload is required")
	}

	// 3. Resolve shipping. Both failure states are user-correctable;
	// checkout must not reach the upstream order call without a rate.
	resolution := u.shippingUC.ResolveRate(ctx, dept)
	switch resolution.Status {
	case domain.ResolutionNoLocation:
		return nil, ErrNoLocationSelected
	case domain.ResolutionNoCoverage:
		return nil, ErrNoCoverage
	}

	quote := domain.QuoteOrder(resolution, subtotal)

	// 4. Place the order upstream with the resolved shipping line.
	wooReq := &woocommerce.OrderRequest{
		PaymentMethod:      req.PaymentMethod,
		PaymentMethodTitle: paymentMethodTitle(req.PaymentMethod),
		SetPaid:            false,
		Billing:            toWooAddress(req.Address),
		Shipping:           toWooAddress(req.Address),
		LineItems:          toWooLineItems(req.Lines),
		ShippingLines: []woocommerce.ShippingLineJSON{
			{
				MethodID:    "flat_rate",
				MethodTitle: resolution.Method.Title,
				Total:       strconv.FormatInt(resolution.Cost, 10),
			},
		},
		CustomerNote: req.Address.Notes,
	}
	if req.PrescriptionURL != "" {
		wooReq.MetaData = []woocommerce.MetaDataJSON{
			{Key: "_prescription_url", Value: req.PrescriptionURL},
		}
	}

	created, err := u.store.CreateOrder(ctx, wooReq)
	if err != nil {
		slog.Error("Usecase: Checkout - upstream order creation failed", "department", dept, "error", err)
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	createdAt, _ := time.Parse("2006-01-02T15:04:05", created.DateCreated)

	slog.Info("Usecase: Checkout - order placed",
		"orderID", created.ID,
		"department", dept,
		"total", utils.FormatCOP(quote.OrderTotal))

	return &domain.Order{
		ID:              created.ID,
		Number:          created.Number,
		Status:          created.Status,
		Lines:           orderLines,
		Subtotal:        quote.CartSubtotal,
		ShippingFee:     quote.ShippingCost,
		ShippingTitle:   quote.MethodTitle,
		TotalAmount:     quote.OrderTotal,
		Currency:        domain.Currency,
		PaymentMethod:   req.PaymentMethod,
		PaymentURL:      created.PaymentURL,
		Address:         req.Address,
		PrescriptionURL: req.PrescriptionURL,
		CreatedAt:       createdAt,
	}, nil
}

func paymentMethodTitle(method string) string {
	switch method {
	case domain.PaymentMethodCOD:
		return "Pago contra entrega"
	default:
		return "Pago en línea"
	}
}

func toWooAddress(addr domain.CheckoutAddress) woocommerce.AddressJSON {
	return woocommerce.AddressJSON{
		FirstName: addr.FirstName,
		LastName:  addr.LastName,
		Address1:  addr.AddressLine,
		City:      addr.City,
		State:     addr.Department,
		Country:   "CO",
		Email:     addr.Email,
		Phone:     addr.Phone,
	}
}

func toWooLineItems(lines []domain.CartLine) []woocommerce.LineItemJSON {
	items := make([]woocommerce.LineItemJSON, 0, len(lines))
	for _, line := range lines {
		items = append(items, woocommerce.LineItemJSON{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	return items
}
