package usecase

import (
	"context"
	"log/slog"

	"pharmaplus-backend/config"
	"pharmaplus-backend/internal/domain"
	"pharmaplus-backend/pkg/cache"
)

// zonesCacheKey is the single fixed key for the zone snapshot. One
// underlying fetch per revalidation window serves every concurrent
// checkout session; sessions only ever read the snapshot.
const zonesCacheKey = "shipping:zones"

type ShippingUsecase struct {
	provider domain.ZoneProvider
	cache    cache.CacheService
	cfg      *config.Config
}

func NewShippingUsecase(provider domain.ZoneProvider, cache cache.CacheService, cfg *config.Config) *ShippingUsecase {
	return &ShippingUsecase{
		provider: provider,
		cache:    cache,
		cfg:      cfg,
	}
}

// GetZones returns the current zone snapshot, fetching from the
// upstream backend at most once per cache window. A failed fetch
// degrades to an empty snapshot: resolution then reports no coverage
// and the storefront shows "shipping currently unavailable" instead of
// a crashed checkout. The empty result is NOT cached, so the next
// request retries the upstream.
func (u *ShippingUsecase) GetZones(ctx context.Context) []domain.ShippingZone {
	if val, found := u.cache.Get(zonesCacheKey); found {
		return val.([]domain.ShippingZone)
	}

	zones, err := u.provider.FetchZones(ctx)
	if err != nil {
		slog.Error("Usecase: GetZones - upstream zone fetch failed", "error", err)
		return []domain.ShippingZone{}
	}

	u.cache.Set(zonesCacheKey, zones, u.cfg.CacheShippingZonesTTL)
	return zones
}

// ResolveRate resolves the shipping method and cost for a department code.
func (u *ShippingUsecase) ResolveRate(ctx context.Context, locationCode string) domain.RateResolution {
	return domain.ResolveShippingRate(u.GetZones(ctx), locationCode)
}

// QuoteOrder combines rate resolution with the cart subtotal.
func (u *ShippingUsecase) QuoteOrder(ctx context.Context, locationCode string, cartSubtotal int64) domain.ShippingQuote {
	return domain.QuoteOrder(u.ResolveRate(ctx, locationCode), cartSubtotal)
}
