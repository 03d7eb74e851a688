package woocommerce

import (
	"context"
	"fmt"
	"testing"

	"pharmaplus-backend/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(api StoreAPI) *ZoneProvider {
	return NewZoneProvider(api, zerolog.Nop())
}

func TestFetchZones_DefaultFixtures(t *testing.T) {
	provider := newTestProvider(NewMockStoreAPI())

	zones, err := provider.FetchZones(context.Background())
	require.NoError(t, err)
	require.Len(t, zones, 3)

	// Exact zones keep the backend's order, catch-all goes last even
	// though the upstream listed it first.
	assert.Equal(t, 5, zones[0].ZoneID)
	assert.Equal(t, 7, zones[1].ZoneID)
	assert.Equal(t, 0, zones[2].ZoneID)

	// State codes arrive as "CO:ANT" and leave as "CO-ANT".
	assert.Equal(t, []string{"CO-ANT"}, zones[0].Locations)
	assert.Equal(t, []string{"CO-DC"}, zones[1].Locations)
	assert.Empty(t, zones[2].Locations)

	assert.Equal(t, int64(8000), zones[0].Methods[0].Cost)
	assert.Equal(t, int64(15000), zones[2].Methods[0].Cost)
}

func TestFetchZones_ZoneListFailureIsReturned(t *testing.T) {
	mock := NewMockStoreAPI()
	mock.SimulateErrors = true
	provider := newTestProvider(mock)

	zones, err := provider.FetchZones(context.Background())
	assert.Error(t, err)
	assert.Nil(t, zones)
}

func TestFetchZones_BadZoneIsSkipped(t *testing.T) {
	mock := NewMockStoreAPI()
	mock.OnListZoneMethods = func(ctx context.Context, zoneID int) ([]ZoneMethod, error) {
		if zoneID == 7 {
			return nil, fmt.Errorf("upstream 500")
		}
		return NewMockStoreAPI().ListZoneMethods(ctx, zoneID)
	}
	provider := newTestProvider(mock)

	zones, err := provider.FetchZones(context.Background())
	require.NoError(t, err)
	require.Len(t, zones, 2)
	assert.Equal(t, 5, zones[0].ZoneID)
	assert.Equal(t, 0, zones[1].ZoneID)
}

func TestFetchZones_DisabledMethodsFiltered(t *testing.T) {
	mock := NewMockStoreAPI()
	mock.OnListZoneMethods = func(ctx context.Context, zoneID int) ([]ZoneMethod, error) {
		if zoneID == 5 {
			return []ZoneMethod{
				{InstanceID: 1, Title: "Apagado", Enabled: false, MethodID: "flat_rate",
					Settings: MethodSettings{Cost: &SettingField{Value: "4000"}}},
				{InstanceID: 2, Title: "Activo", Enabled: true, MethodID: "flat_rate",
					Settings: MethodSettings{Cost: &SettingField{Value: "9000"}}},
			}, nil
		}
		return NewMockStoreAPI().ListZoneMethods(ctx, zoneID)
	}
	provider := newTestProvider(mock)

	zones, err := provider.FetchZones(context.Background())
	require.NoError(t, err)

	var antioquia *domain.ShippingZone
	for i := range zones {
		if zones[i].ZoneID == 5 {
			antioquia = &zones[i]
		}
	}
	require.NotNil(t, antioquia)
	require.Len(t, antioquia.Methods, 1)
	assert.Equal(t, "Activo", antioquia.Methods[0].Title)
}

func TestFetchZones_ZoneWithoutEnabledMethodsDropped(t *testing.T) {
	mock := NewMockStoreAPI()
	mock.OnListZoneMethods = func(ctx context.Context, zoneID int) ([]ZoneMethod, error) {
		if zoneID == 7 {
			return []ZoneMethod{
				{InstanceID: 1, Enabled: false, MethodID: "flat_rate"},
			}, nil
		}
		return NewMockStoreAPI().ListZoneMethods(ctx, zoneID)
	}
	provider := newTestProvider(mock)

	zones, err := provider.FetchZones(context.Background())
	require.NoError(t, err)
	for _, z := range zones {
		assert.NotEqual(t, 7, z.ZoneID)
	}
}

func TestMethodCost(t *testing.T) {
	tests := []struct {
		name   string
		method ZoneMethod
		want   int64
	}{
		{
			"flat rate",
			ZoneMethod{MethodID: "flat_rate", Settings: MethodSettings{Cost: &SettingField{Value: "8000"}}},
			8000,
		},
		{
			"decimal string rounds",
			ZoneMethod{MethodID: "flat_rate", Settings: MethodSettings{Cost: &SettingField{Value: "8000.49"}}},
			8000,
		},
		{
			"free shipping ignores settings",
			ZoneMethod{MethodID: "free_shipping", Settings: MethodSettings{Cost: &SettingField{Value: "9999"}}},
			0,
		},
		{
			"missing cost field",
			ZoneMethod{MethodID: "flat_rate"},
			0,
		},
		{
			"malformed cost",
			ZoneMethod{MethodID: "flat_rate", Settings: MethodSettings{Cost: &SettingField{Value: "abc"}}},
			0,
		},
		{
			"negative cost",
			ZoneMethod{MethodID: "flat_rate", Settings: MethodSettings{Cost: &SettingField{Value: "-500"}}},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, methodCost(tt.method))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"8000", 8000},
		{"8000.00", 8000},
		{" 12500 ", 12500},
		{"", 0},
		{"free", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"-1", 0},
		{"0.5", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseAmount(tt.in), "parseAmount(%q)", tt.in)
	}
}

func TestNormalizeLocationCodes(t *testing.T) {
	codes := normalizeLocationCodes([]ZoneLocation{
		{Code: "CO:ANT", Type: "state"},
		{Code: "CO", Type: "country"},
		{Code: "050001", Type: "postcode"},
	})
	assert.Equal(t, []string{"CO-ANT", "CO", "050001"}, codes)
}
