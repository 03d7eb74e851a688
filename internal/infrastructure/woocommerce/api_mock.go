package woocommerce

import (
	"context"
	"fmt"
	"time"
)

// MockStoreAPI is a mock implementation of StoreAPI for testing.
type MockStoreAPI struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnListShippingZones func(ctx context.Context) ([]Zone, error)
	OnListZoneLocations func(ctx context.Context, zoneID int) ([]ZoneLocation, error)
	OnListZoneMethods   func(ctx context.Context, zoneID int) ([]ZoneMethod, error)
	OnListProducts      func(ctx context.Context, page, perPage int, search, category string) ([]ProductJSON, error)
	OnGetProductBySlug  func(ctx context.Context, slug string) (*ProductJSON, error)
	OnGetProduct        func(ctx context.Context, id int64) (*ProductJSON, error)
	OnListCategories    func(ctx context.Context) ([]CategoryJSON, error)
	OnGetPageBySlug     func(ctx context.Context, slug string) (*PageJSON, error)
	OnCreateOrder       func(ctx context.Context, req *OrderRequest) (*OrderJSON, error)
}

// NewMockStoreAPI creates a mock store with default fixture behavior.
func NewMockStoreAPI() *MockStoreAPI {
	return &MockStoreAPI{}
}

func (m *MockStoreAPI) simulate() error {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}
	if m.SimulateErrors {
		return fmt.Errorf("simulated store error")
	}
	return nil
}

// ListShippingZones returns two fixture zones plus the default zone.
func (m *MockStoreAPI) ListShippingZones(ctx context.Context) ([]Zone, error) {
	if err := m.simulate(); err != nil {
		return nil, err
	}
	if m.OnListShippingZones != nil {
		return m.OnListShippingZones(ctx)
	}
	return []Zone{
		{ID: 0, Name: "Locations not covered by your other zones", Order: 0},
		{ID: 5, Name: "Medellín y Antioquia", Order: 1},
		{ID: 7, Name: "Bogotá", Order: 2},
	}, nil
}

func (m *MockStoreAPI) ListZoneLocations(ctx context.Context, zoneID int) ([]ZoneLocation, error) {
	if err := m.simulate(); err != nil {
		return nil, err
	}
	if m.OnListZoneLocations != nil {
		return m.OnListZoneLocations(ctx, zoneID)
	}
	switch zoneID {
	case 5:
		return []ZoneLocation{{Code: "CO:ANT", Type: "state"}}, nil
	case 7:
		return []ZoneLocation{{Code: "CO:DC", Type: "state"}}, nil
	default:
		return []ZoneLocation{}, nil
	}
}

func (m *MockStoreAPI) ListZoneMethods(ctx context.Context, zoneID int) ([]ZoneMethod, error) {
	if err := m.simulate(); err != nil {
		return nil, err
	}
	if m.OnListZoneMethods != nil {
		return m.OnListZoneMethods(ctx, zoneID)
	}
	switch zoneID {
	case 5:
		return []ZoneMethod{
			{InstanceID: 11, Title: "Envío Medellín", Enabled: true, MethodID: "flat_rate",
				Settings: MethodSettings{Cost: &SettingField{ID: "cost", Value: "8000"}}},
		}, nil
	case 7:
		return []ZoneMethod{
			{InstanceID: 12, Title: "Envío Bogotá", Enabled: true, MethodID: "flat_rate",
				Settings: MethodSettings{Cost: &SettingField{ID: "cost", Value: "10000"}}},
		}, nil
	default:
		return []ZoneMethod{
			{InstanceID: 13, Title: "Resto del País", Enabled: true, MethodID: "flat_rate",
				Settings: MethodSettings{Cost: &SettingField{ID: "cost", Value: "15000"}}},
		}, nil
	}
}

func (m *MockStoreAPI) ListProducts(ctx context.Context, page, perPage int, search, category string) ([]ProductJSON, error) {
	if err := m.simulate(); err != nil {
		return nil, err
	}
	if m.OnListProducts != nil {
		return m.OnListProducts(ctx, page, perPage, search, category)
	}
	return []ProductJSON{
		{ID: 101, Name: "Acetaminofén 500mg x30", Slug: "acetaminofen-500", Price: "12900",
			RegularPrice: "12900", StockStatus: "instock"},
		{ID: 102, Name: "Ibuprofeno 400mg x20", Slug: "ibuprofeno-400", Price: "15500",
			RegularPrice: "18900", SalePrice: "15500", OnSale: true, StockStatus: "instock"},
	}, nil
}

func (m *MockStoreAPI) GetProductBySlug(ctx context.Context, slug string) (*ProductJSON, error) {
	if err := m.simulate(); err != nil {
		return nil, err
	}
	if m.OnGetProductBySlug != nil {
		return m.OnGetProductBySlug(ctx, slug)
	}
	products, _ := m.ListProducts(ctx, 1, 10, "", "")
	for i := range products {
		if products[i].Slug == slug {
			return &products[i], nil
		}
	}
	return nil, nil
}

func (m *MockStoreAPI) GetProduct(ctx context.Context, id int64) (*ProductJSON, error) {
	if err := m.simulate(); err != nil {
		return nil, err
	}
	if m.OnGetProduct != nil {
		return m.OnGetProduct(ctx, id)
	}
	products, _ := m.ListProducts(ctx, 1, 10, "", "")
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("product %d not found", id)
}

func (m *MockStoreAPI) ListCategories(ctx context.Context) ([]CategoryJSON, error) {
	if err := m.simulate(); err != nil {
		return nil, err
	}
	if m.OnListCategories != nil {
		return m.OnListCategories(ctx)
	}
	return []CategoryJSON{
		{ID: 1, Name: "Analgésicos", Slug: "analgesicos", Count: 24},
		{ID: 2, Name: "Cuidado Personal", Slug: "cuidado-personal", Count: 51},
	}, nil
}

func (m *MockStoreAPI) GetPageBySlug(ctx context.Context, slug string) (*PageJSON, error) {
	if err := m.simulate(); err != nil {
		return nil, err
	}
	if m.OnGetPageBySlug != nil {
		return m.OnGetPageBySlug(ctx, slug)
	}
	return &PageJSON{
		ID:       9,
		Slug:     slug,
		Title:    RenderedJSON{Rendered: "Quiénes Somos"},
		Content:  RenderedJSON{Rendered: "<p>Droguería de confianza.</p>"},
		Modified: "2026-01-10T09:00:00",
	}, nil
}

func (m *MockStoreAPI) CreateOrder(ctx context.Context, req *OrderRequest) (*OrderJSON, error) {
	if err := m.simulate(); err != nil {
		return nil, err
	}
	if m.OnCreateOrder != nil {
		return m.OnCreateOrder(ctx, req)
	}
	return &OrderJSON{
		ID:          5001,
		Number:      "5001",
		Status:      "pending",
		Currency:    "COP",
		PaymentURL:  "https://store.example.com/checkout/order-pay/5001",
		DateCreated: time.Now().Format("2006-01-02T15:04:05"),
	}, nil
}
