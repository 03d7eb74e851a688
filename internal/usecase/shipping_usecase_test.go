package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pharmaplus-backend/config"
	"pharmaplus-backend/internal/domain"
	"pharmaplus-backend/internal/infrastructure/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeZoneProvider counts fetches so the tests can assert the cache
// collapses concurrent windows into a single upstream call.
type fakeZoneProvider struct {
	zones   []domain.ShippingZone
	err     error
	fetches int
}

func (f *fakeZoneProvider) FetchZones(ctx context.Context) ([]domain.ShippingZone, error) {
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return f.zones, nil
}

func fixtureZones() []domain.ShippingZone {
	return []domain.ShippingZone{
		{
			ZoneID:    5,
			Name:      "Medellín y Antioquia",
			Locations: []string{domain.DepartmentAntioquia},
			Methods:   []domain.ShippingMethod{{ID: "11", Title: "Envío Medellín", Cost: 8000}},
		},
		{
			ZoneID:  0,
			Name:    "Resto del País",
			Methods: []domain.ShippingMethod{{ID: "13", Title: "Envío Nacional", Cost: 15000}},
		},
	}
}

func newShippingUC(provider domain.ZoneProvider) *ShippingUsecase {
	memCache := cache.NewMemoryCache(time.Minute, time.Minute)
	cfg := &config.Config{CacheShippingZonesTTL: time.Minute}
	return NewShippingUsecase(provider, memCache, cfg)
}

func TestGetZones_SingleFetchPerWindow(t *testing.T) {
	provider := &fakeZoneProvider{zones: fixtureZones()}
	uc := newShippingUC(provider)

	for i := 0; i < 20; i++ {
		zones := uc.GetZones(context.Background())
		assert.Len(t, zones, 2)
	}

	assert.Equal(t, 1, provider.fetches)
}

func TestGetZones_FetchFailureDegradesToEmpty(t *testing.T) {
	provider := &fakeZoneProvider{err: fmt.Errorf("upstream down")}
	uc := newShippingUC(provider)

	zones := uc.GetZones(context.Background())
	assert.Empty(t, zones)

	// The empty snapshot is not cached; the next call retries.
	uc.GetZones(context.Background())
	assert.Equal(t, 2, provider.fetches)
}

func TestGetZones_RecoversAfterFailure(t *testing.T) {
	provider := &fakeZoneProvider{err: fmt.Errorf("upstream down")}
	uc := newShippingUC(provider)

	assert.Empty(t, uc.GetZones(context.Background()))

	provider.err = nil
	provider.zones = fixtureZones()
	assert.Len(t, uc.GetZones(context.Background()), 2)
}

func TestResolveRate_ThroughCache(t *testing.T) {
	provider := &fakeZoneProvider{zones: fixtureZones()}
	uc := newShippingUC(provider)

	res := uc.ResolveRate(context.Background(), domain.DepartmentAntioquia)
	require.Equal(t, domain.ResolutionResolved, res.Status)
	assert.Equal(t, int64(8000), res.Cost)

	res = uc.ResolveRate(context.Background(), "CO-NAR")
	require.Equal(t, domain.ResolutionResolved, res.Status)
	assert.Equal(t, int64(15000), res.Cost)

	assert.Equal(t, 1, provider.fetches)
}

func TestResolveRate_UpstreamDownMeansNoCoverage(t *testing.T) {
	provider := &fakeZoneProvider{err: fmt.Errorf("upstream down")}
	uc := newShippingUC(provider)

	res := uc.ResolveRate(context.Background(), domain.DepartmentAntioquia)
	assert.Equal(t, domain.ResolutionNoCoverage, res.Status)
}

func TestQuoteOrder_Usecase(t *testing.T) {
	provider := &fakeZoneProvider{zones: fixtureZones()}
	uc := newShippingUC(provider)

	q := uc.QuoteOrder(context.Background(), domain.DepartmentAntioquia, 129900)
	require.Equal(t, domain.ResolutionResolved, q.Status)
	assert.Equal(t, int64(137900), q.OrderTotal)

	q = uc.QuoteOrder(context.Background(), "", 129900)
	assert.Equal(t, domain.ResolutionNoLocation, q.Status)
	assert.Zero(t, q.OrderTotal)
}
