package domain

import "context"

// DefaultZoneID is the reserved identifier for the "rest of the country"
// catch-all zone in the upstream commerce backend.
const DefaultZoneID = 0

// ShippingMethod is a single shipping option inside a zone.
// Cost is an exact amount in Colombian pesos (COP has no cents).
type ShippingMethod struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Cost        int64  `json:"cost"`
	Description string `json:"description,omitempty"`
}

// ShippingZone binds a set of department codes to an ordered list of
// enabled shipping methods. A zone with ZoneID == 0 or an empty
// Locations set is the catch-all / default zone.
// Zones are read-only snapshots; they are never mutated after normalization.
type ShippingZone struct {
	ZoneID    int              `json:"zoneId"`
	Name      string           `json:"name"`
	Locations []string         `json:"locations"`
	Methods   []ShippingMethod `json:"methods"`
}

// HasLocation reports whether the zone explicitly serves the given code.
func (z *ShippingZone) HasLocation(code string) bool {
	for _, loc := range z.Locations {
		if loc == code {
			return true
		}
	}
	return false
}

// IsCatchAll reports whether the zone acts as the default fallback.
// The upstream system signals this two ways (reserved id 0, or no
// location restrictions); both are treated as equivalent.
func (z *ShippingZone) IsCatchAll() bool {
	return z.ZoneID == DefaultZoneID || len(z.Locations) == 0
}

// ResolutionStatus tags the outcome of a rate resolution.
type ResolutionStatus string

const (
	// ResolutionResolved means a zone and method were selected.
	ResolutionResolved ResolutionStatus = "resolved"
	// ResolutionNoLocation means the customer has not picked a department yet.
	// A user-correctable validation state, not an error.
	ResolutionNoLocation ResolutionStatus = "no_location"
	// ResolutionNoCoverage means no zone (explicit or catch-all) serves the
	// selected department. Checkout must not proceed.
	ResolutionNoCoverage ResolutionStatus = "no_coverage"
)

// RateResolution is the outcome of resolving a shipping rate for a
// department code against a zone snapshot. Zone and Method are set only
// when Status is ResolutionResolved.
type RateResolution struct {
	Status ResolutionStatus `json:"status"`
	Zone   *ShippingZone    `json:"zone,omitempty"`
	Method *ShippingMethod  `json:"method,omitempty"`
	Cost   int64            `json:"cost"`
}

// Resolved reports whether a shipping cost was produced.
func (r RateResolution) Resolved() bool {
	return r.Status == ResolutionResolved
}

// ResolveShippingRate deterministically selects one zone and one method
// for the given department code.
//
// Precedence is an explicit two-pass scan, NOT incidental list order:
//  1. exact pass: first zone whose Locations contains the code wins;
//  2. catch-all pass: first zone with ZoneID == 0 or empty Locations wins.
//
// Within the matched zone the first listed method wins; methods are
// pre-ordered by the upstream system and are never re-sorted or
// cheapest-picked here. The function is pure: same snapshot and code
// always yield the same resolution.
func ResolveShippingRate(zones []ShippingZone, locationCode string) RateResolution {
	if locationCode == "" {
		return RateResolution{Status: ResolutionNoLocation}
	}

	// Pass 1: exact location match.
	for i := range zones {
		if zones[i].HasLocation(locationCode) {
			return resolvedFrom(&zones[i])
		}
	}

	// Pass 2: catch-all fallback.
	for i := range zones {
		if zones[i].IsCatchAll() {
			return resolvedFrom(&zones[i])
		}
	}

	return RateResolution{Status: ResolutionNoCoverage}
}

func resolvedFrom(zone *ShippingZone) RateResolution {
	// Zones without enabled methods are dropped during normalization, but
	// guard anyway so a malformed snapshot degrades to no coverage.
	if len(zone.Methods) == 0 {
		return RateResolution{Status: ResolutionNoCoverage}
	}
	method := &zone.Methods[0]
	return RateResolution{
		Status: ResolutionResolved,
		Zone:   zone,
		Method: method,
		Cost:   method.Cost,
	}
}

// ShippingQuote combines a rate resolution with the cart subtotal.
// All amounts are integer COP; Total is exact, no floating point.
type ShippingQuote struct {
	Status       ResolutionStatus `json:"status"`
	MethodTitle  string           `json:"methodTitle,omitempty"`
	ShippingCost int64            `json:"shippingCost"`
	CartSubtotal int64            `json:"cartSubtotal"`
	OrderTotal   int64            `json:"orderTotal"`
}

// QuoteOrder computes the order total for a resolved rate. For the
// validation states the quote carries the subtotal but no total.
func QuoteOrder(res RateResolution, cartSubtotal int64) ShippingQuote {
	q := ShippingQuote{
		Status:       res.Status,
		CartSubtotal: cartSubtotal,
	}
	if !res.Resolved() {
		return q
	}
	q.MethodTitle = res.Method.Title
	q.ShippingCost = res.Cost
	q.OrderTotal = cartSubtotal + res.Cost
	return q
}

// ZoneProvider fetches the full zone snapshot from the upstream
// commerce backend. Implementations perform the only I/O in the
// shipping path; the resolver itself never does.
type ZoneProvider interface {
	FetchZones(ctx context.Context) ([]ShippingZone, error)
}
