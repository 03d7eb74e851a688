package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testZones() []ShippingZone {
	return []ShippingZone{
		{
			ZoneID:    5,
			Name:      "Medellín y Antioquia",
			Locations: []string{DepartmentAntioquia},
			Methods: []ShippingMethod{
				{ID: "11", Title: "Envío Medellín", Cost: 8000},
			},
		},
		{
			ZoneID:    7,
			Name:      "Bogotá",
			Locations: []string{DepartmentBogota},
			Methods: []ShippingMethod{
				{ID: "12", Title: "Envío Bogotá", Cost: 10000},
			},
		},
		{
			ZoneID: 0,
			Name:   "Resto del País",
			Methods: []ShippingMethod{
				{ID: "13", Title: "Envío Nacional", Cost: 15000},
			},
		},
	}
}

func TestResolveShippingRate_ExactMatch(t *testing.T) {
	res := ResolveShippingRate(testZones(), DepartmentAntioquia)

	require.Equal(t, ResolutionResolved, res.Status)
	assert.Equal(t, 5, res.Zone.ZoneID)
	assert.Equal(t, "Envío Medellín", res.Method.Title)
	assert.Equal(t, int64(8000), res.Cost)
}

func TestResolveShippingRate_FallsBackToCatchAll(t *testing.T) {
	// Nariño is not listed in any zone; the default zone covers it.
	res := ResolveShippingRate(testZones(), "CO-NAR")

	require.Equal(t, ResolutionResolved, res.Status)
	assert.Equal(t, 0, res.Zone.ZoneID)
	assert.Equal(t, int64(15000), res.Cost)
}

func TestResolveShippingRate_EmptyLocationsZoneIsCatchAll(t *testing.T) {
	// A non-zero zone with no location restrictions must act as the
	// default too; both catch-all signals are equivalent.
	zones := []ShippingZone{
		{
			ZoneID:    5,
			Locations: []string{DepartmentAntioquia},
			Methods:   []ShippingMethod{{ID: "11", Cost: 8000}},
		},
		{
			ZoneID:  42,
			Name:    "Todo el país",
			Methods: []ShippingMethod{{ID: "99", Cost: 12000}},
		},
	}

	res := ResolveShippingRate(zones, "CO-NAR")

	require.Equal(t, ResolutionResolved, res.Status)
	assert.Equal(t, 42, res.Zone.ZoneID)
	assert.Equal(t, int64(12000), res.Cost)
}

func TestResolveShippingRate_ExactBeatsEarlierCatchAll(t *testing.T) {
	// Even when the catch-all sits first in the slice, an exact match
	// further down must win: precedence is two-pass, not list order.
	zones := []ShippingZone{
		{
			ZoneID:  0,
			Name:    "Resto del País",
			Methods: []ShippingMethod{{ID: "13", Cost: 15000}},
		},
		{
			ZoneID:    7,
			Locations: []string{DepartmentBogota},
			Methods:   []ShippingMethod{{ID: "12", Cost: 10000}},
		},
	}

	res := ResolveShippingRate(zones, DepartmentBogota)

	require.Equal(t, ResolutionResolved, res.Status)
	assert.Equal(t, 7, res.Zone.ZoneID)
	assert.Equal(t, int64(10000), res.Cost)
}

func TestResolveShippingRate_FirstExactMatchWins(t *testing.T) {
	// Two zones claim the same department; the first in snapshot order
	// wins, deterministically.
	zones := []ShippingZone{
		{
			ZoneID:    5,
			Locations: []string{DepartmentAntioquia},
			Methods:   []ShippingMethod{{ID: "11", Cost: 8000}},
		},
		{
			ZoneID:    9,
			Locations: []string{DepartmentAntioquia},
			Methods:   []ShippingMethod{{ID: "21", Cost: 5000}},
		},
	}

	res := ResolveShippingRate(zones, DepartmentAntioquia)

	require.Equal(t, ResolutionResolved, res.Status)
	assert.Equal(t, 5, res.Zone.ZoneID)
	assert.Equal(t, int64(8000), res.Cost)
}

func TestResolveShippingRate_FirstListedMethodWins(t *testing.T) {
	zones := []ShippingZone{
		{
			ZoneID:    5,
			Locations: []string{DepartmentAntioquia},
			Methods: []ShippingMethod{
				{ID: "11", Title: "Express", Cost: 12000},
				{ID: "12", Title: "Estándar", Cost: 6000},
			},
		},
	}

	res := ResolveShippingRate(zones, DepartmentAntioquia)

	require.Equal(t, ResolutionResolved, res.Status)
	// Not the cheapest: the upstream ordering decides.
	assert.Equal(t, "Express", res.Method.Title)
	assert.Equal(t, int64(12000), res.Cost)
}

func TestResolveShippingRate_EmptyLocationCode(t *testing.T) {
	res := ResolveShippingRate(testZones(), "")

	assert.Equal(t, ResolutionNoLocation, res.Status)
	assert.Nil(t, res.Zone)
	assert.Nil(t, res.Method)
	assert.Zero(t, res.Cost)
}

func TestResolveShippingRate_NoCoverage(t *testing.T) {
	// No catch-all configured and the department is not listed.
	zones := []ShippingZone{
		{
			ZoneID:    5,
			Locations: []string{DepartmentAntioquia},
			Methods:   []ShippingMethod{{ID: "11", Cost: 8000}},
		},
	}

	res := ResolveShippingRate(zones, "CO-VAU")

	assert.Equal(t, ResolutionNoCoverage, res.Status)
	assert.False(t, res.Resolved())
}

func TestResolveShippingRate_EmptySnapshot(t *testing.T) {
	res := ResolveShippingRate(nil, DepartmentAntioquia)
	assert.Equal(t, ResolutionNoCoverage, res.Status)

	res = ResolveShippingRate([]ShippingZone{}, DepartmentAntioquia)
	assert.Equal(t, ResolutionNoCoverage, res.Status)
}

func TestResolveShippingRate_ZoneWithoutMethods(t *testing.T) {
	// Normalization drops method-less zones, but a malformed snapshot
	// must still degrade to no coverage instead of panicking.
	zones := []ShippingZone{
		{
			ZoneID:    5,
			Locations: []string{DepartmentAntioquia},
		},
	}

	res := ResolveShippingRate(zones, DepartmentAntioquia)
	assert.Equal(t, ResolutionNoCoverage, res.Status)
}

func TestResolveShippingRate_Deterministic(t *testing.T) {
	zones := testZones()
	first := ResolveShippingRate(zones, DepartmentBogota)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, ResolveShippingRate(zones, DepartmentBogota))
	}
}

func TestQuoteOrder_TotalIsExactSum(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		subtotal int64
		want     int64
	}{
		{"medellin order", DepartmentAntioquia, 129900, 137900},
		{"bogota order", DepartmentBogota, 50000, 60000},
		{"rest of country", "CO-NAR", 20000, 35000},
		{"zero subtotal", DepartmentBogota, 0, 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ResolveShippingRate(testZones(), tt.code)
			q := QuoteOrder(res, tt.subtotal)

			require.Equal(t, ResolutionResolved, q.Status)
			assert.Equal(t, tt.subtotal, q.CartSubtotal)
			assert.Equal(t, tt.want, q.OrderTotal)
			assert.Equal(t, tt.subtotal+q.ShippingCost, q.OrderTotal)
		})
	}
}

func TestQuoteOrder_NoFloatDrift(t *testing.T) {
	zones := []ShippingZone{
		{
			ZoneID:    7,
			Locations: []string{DepartmentBogota},
			Methods:   []ShippingMethod{{ID: "12", Title: "Envío Bogotá", Cost: 12000}},
		},
	}

	q := QuoteOrder(ResolveShippingRate(zones, DepartmentBogota), 129900)

	require.Equal(t, ResolutionResolved, q.Status)
	assert.Equal(t, int64(141900), q.OrderTotal)
}

func TestQuoteOrder_FreeShipping(t *testing.T) {
	zones := []ShippingZone{
		{
			ZoneID:    7,
			Locations: []string{DepartmentBogota},
			Methods:   []ShippingMethod{{ID: "31", Title: "Envío Gratis", Cost: 0}},
		},
	}

	q := QuoteOrder(ResolveShippingRate(zones, DepartmentBogota), 129900)

	require.Equal(t, ResolutionResolved, q.Status)
	assert.Zero(t, q.ShippingCost)
	assert.Equal(t, int64(129900), q.OrderTotal)
}

func TestQuoteOrder_ValidationStatesCarryNoTotal(t *testing.T) {
	q := QuoteOrder(ResolveShippingRate(testZones(), ""), 50000)
	assert.Equal(t, ResolutionNoLocation, q.Status)
	assert.Equal(t, int64(50000), q.CartSubtotal)
	assert.Zero(t, q.OrderTotal)

	q = QuoteOrder(ResolveShippingRate(nil, DepartmentBogota), 50000)
	assert.Equal(t, ResolutionNoCoverage, q.Status)
	assert.Zero(t, q.OrderTotal)
}
