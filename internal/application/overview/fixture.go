package overview

import (
	"time"

	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/signal"
)

// demoSignalCount is the fixed size of the fallback payload.
const demoSignalCount = 6

// demoSeed describes one canned signal.  Ages are relative so the fixture
// always looks current regardless of when it is served.
type demoSeed struct {
	id         string
	lat, lon   float64
	typ        signal.SignalType
	scope      signal.ImpactScope
	importance int
	confidence int
	ageHours   int
	label      string
	subtitle   string
	impact     string
}

var demoSeeds = [demoSignalCount]demoSeed{
	{
		id: "demo-1", lat: 25.03, lon: 121.57,
		typ: signal.TypeSupplyChains, scope: signal.ScopeGlobal,
		importance: 92, confidence: 80, ageHours: 3,
		label:    "Semiconductor export controls tightened",
		subtitle: "New licensing rules for advanced chip tooling",
		impact:   "Foundry lead times expected to stretch across Q3",
	},
	{
		id: "demo-2", lat: 26.6, lon: 56.5,
		typ: signal.TypeEnergy, scope: signal.ScopeGlobal,
		importance: 88, confidence: 75, ageHours: 6,
		label:    "Tanker transits slow through Hormuz",
		subtitle: "Insurers raise war-risk premiums on gulf routes",
		impact:   "Crude freight costs up sharply week over week",
	},
	{
		id: "demo-3", lat: 50.45, lon: 30.52,
		typ: signal.TypeGeopolitics, scope: signal.ScopeRegional,
		importance: 76, confidence: 70, ageHours: 12,
		label:    "Grain corridor talks resume",
		subtitle: "Negotiators reconvene on Black Sea shipping lanes",
		impact:   "Wheat futures steady on renewed corridor hopes",
	},
	{
		id: "demo-4", lat: 40.71, lon: -74.01,
		typ: signal.TypeMarkets, scope: signal.ScopeGlobal,
		importance: 71, confidence: 85, ageHours: 18,
		label:    "Rate decision surprises bond desks",
		subtitle: "Hold announced against consensus of a cut",
		impact:   "Treasury yields reprice across the curve",
	},
	{
		id: "demo-5", lat: -2.9, lon: 23.4,
		typ: signal.TypeSupplyChains, scope: signal.ScopeRegional,
		importance: 64, confidence: 65, ageHours: 30,
		label:    "Cobalt shipments delayed at border",
		subtitle: "Customs backlog slows mineral exports",
		impact:   "Battery-grade cobalt spot quotes firming",
	},
	{
		id: "demo-6", lat: 1.35, lon: 103.82,
		typ: signal.TypeSecurity, scope: signal.ScopeRegional,
		importance: 58, confidence: 60, ageHours: 40,
		label:    "Port operator reports cyber intrusion",
		subtitle: "Container terminal systems briefly offline",
		impact:   "Transshipment schedules recovering after outage",
	},
}

// DemoSignals returns the deterministic fallback payload.  now anchors the
// relative timestamps; two calls with the same now are identical.
func DemoSignals(now time.Time) []signal.OverviewSignal {
	out := make([]signal.OverviewSignal, 0, demoSignalCount)
	for _, s := range demoSeeds {
		out = append(out, signal.OverviewSignal{
			ID:            s.id,
			Lat:           s.lat,
			Lon:           s.lon,
			Type:          s.typ,
			Scope:         s.scope,
			Importance:    s.importance,
			Confidence:    s.confidence,
			OccurredAt:    now.Add(-time.Duration(s.ageHours) * time.Hour),
			LabelShort:    s.label,
			SubtitleShort: s.subtitle,
			ImpactOneLine: s.impact,
			InvestigateID: s.id,
		})
	}
	return out
}

// DemoTopEvents derives the fallback top-events rail from the first entries
// of the fixture.
func DemoTopEvents(now time.Time) []signal.EventSummary {
	signals := DemoSignals(now)
	out := make([]signal.EventSummary, 0, enrichedTotalCap)
	for _, s := range signals[:enrichedTotalCap] {
		out = append(out, signal.EventSummary{
			Title:      s.LabelShort,
			Summary:    s.SubtitleShort,
			OccurredAt: s.OccurredAt,
			Source:     signal.SummarySourceInternal,
		})
	}
	return out
}

// DemoTopImpacts is the fallback corporate-impact rail.
func DemoTopImpacts(now time.Time) []signal.CorporateImpact {
	return []signal.CorporateImpact{
		{Company: "Northgate Semiconductors", Headline: "Export licensing review may delay tool deliveries", GeneratedAt: now.Add(-2 * time.Hour)},
		{Company: "Meridian Shipping Group", Headline: "Gulf routing surcharges applied to spot bookings", GeneratedAt: now.Add(-5 * time.Hour)},
		{Company: "Helios Grid Partners", Headline: "Power procurement costs rise on gas volatility", GeneratedAt: now.Add(-9 * time.Hour)},
	}
}

//Personal.AI order the ending
