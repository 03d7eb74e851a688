package woocommerce

import (
	"context"
	"math"
	"strconv"
	"strings"

	"pharmaplus-backend/internal/domain"

	"github.com/rs/zerolog"
)

// methodFreeShipping is the upstream method type that is always free,
// regardless of whatever its settings payload says.
const methodFreeShipping = "free_shipping"

// ZoneProvider normalizes the upstream zone/location/method data into
// the domain shipping model. It implements domain.ZoneProvider.
type ZoneProvider struct {
	api StoreAPI
	log zerolog.Logger
}

func NewZoneProvider(api StoreAPI, log zerolog.Logger) *ZoneProvider {
	return &ZoneProvider{api: api, log: log}
}

// FetchZones builds the full zone snapshot: zones in the backend's
// native order, each carrying only its enabled methods, with the
// default zone (id 0) appended last. Zones that end up with zero
// enabled methods are not included at all.
//
// A failure listing the zones themselves is returned to the caller; a
// failure on a single zone's sub-resources skips that zone so one bad
// zone cannot take shipping down for the whole country.
func (p *ZoneProvider) FetchZones(ctx context.Context) ([]domain.ShippingZone, error) {
	rawZones, err := p.api.ListShippingZones(ctx)
	if err != nil {
		return nil, err
	}

	var zones []domain.ShippingZone
	var defaultZone *domain.ShippingZone

	for _, raw := range rawZones {
		zone, err := p.buildZone(ctx, raw)
		if err != nil {
			p.log.Warn().Err(err).Int("zone_id", raw.ID).Str("zone", raw.Name).
				Msg("Skipping shipping zone: sub-resource fetch failed")
			continue
		}
		if zone == nil {
			continue // no enabled methods
		}
		if zone.ZoneID == domain.DefaultZoneID {
			defaultZone = zone
			continue
		}
		zones = append(zones, *zone)
	}

	// The catch-all zone always goes last so the exact zones keep
	// precedence even under a plain first-match scan.
	if defaultZone != nil {
		zones = append(zones, *defaultZone)
	}

	return zones, nil
}

func (p *ZoneProvider) buildZone(ctx context.Context, raw Zone) (*domain.ShippingZone, error) {
	methods, err := p.api.ListZoneMethods(ctx, raw.ID)
	if err != nil {
		return nil, err
	}

	enabled := make([]domain.ShippingMethod, 0, len(methods))
	for _, m := range methods {
		if !m.Enabled {
			continue
		}
		enabled = append(enabled, domain.ShippingMethod{
			ID:          strconv.Itoa(m.InstanceID),
			Title:       m.Title,
			Cost:        methodCost(m),
			Description: m.MethodTitle,
		})
	}
	if len(enabled) == 0 {
		return nil, nil
	}

	zone := &domain.ShippingZone{
		ZoneID:  raw.ID,
		Name:    raw.Name,
		Methods: enabled,
	}

	// The default zone has no explicit locations upstream.
	if raw.ID != domain.DefaultZoneID {
		locations, err := p.api.ListZoneLocations(ctx, raw.ID)
		if err != nil {
			return nil, err
		}
		zone.Locations = normalizeLocationCodes(locations)
	}

	return zone, nil
}

// methodCost resolves the cost once during normalization so the
// resolver only ever sees a clean integer. Free shipping is zero no
// matter what its settings contain; anything that does not parse as a
// non-negative amount downgrades to zero rather than failing the zone.
// A wrong free-shipping display is recoverable at order review; a
// crashed checkout is not.
func methodCost(m ZoneMethod) int64 {
	if m.MethodID == methodFreeShipping {
		return 0
	}
	if m.Settings.Cost == nil {
		return 0
	}
	return parseAmount(m.Settings.Cost.Value)
}

// parseAmount converts an upstream decimal string ("8000", "8000.00")
// to integer COP. Malformed input yields 0, never NaN and never an error.
func parseAmount(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return int64(math.Round(f))
}

// normalizeLocationCodes maps upstream "CO:ANT" state codes to the
// ISO 3166-2 style "CO-ANT" the storefront selector uses. Non-state
// entries (countries, postcodes) are passed through untouched.
func normalizeLocationCodes(locations []ZoneLocation) []string {
	codes := make([]string, 0, len(locations))
	for _, loc := range locations {
		code := loc.Code
		if loc.Type == "state" {
			code = strings.Replace(code, ":", "-", 1)
		}
		codes = append(codes, code)
	}
	return codes
}
