package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		eventType string
		sector    string
		want      SignalType
	}{
		{"energy sector wins over geopolitical type", "geopolitical", "Oil & Gas", TypeEnergy},
		{"energy keyword in type", "pipeline_disruption", "", TypeEnergy},
		{"lng sector", "market", "LNG terminals", TypeEnergy},
		{"geopolitical type", "geopolitical", "telecom", TypeGeopolitics},
		{"regulatory type", "Regulatory", "", TypeGeopolitics},
		{"diplomatic type", "diplomatic", "", TypeGeopolitics},
		{"supply chain underscore", "supply_chain", "", TypeSupplyChains},
		{"supply chain hyphen", "supply-chain", "", TypeSupplyChains},
		{"industrial type", "industrial", "", TypeSupplyChains},
		{"market type", "market", "retail", TypeMarkets},
		{"economic type", "economic", "", TypeMarkets},
		{"security type", "security", "", TypeSecurity},
		{"cyber type", "cyber", "", TypeSecurity},
		{"mining sector falls through types", "announcement", "Mining", TypeSupplyChains},
		{"semiconductor sector", "announcement", "semiconductors", TypeSupplyChains},
		{"banking sector", "announcement", "Banking", TypeMarkets},
		{"unknown defaults to geopolitics", "weather", "tourism", TypeGeopolitics},
		{"empty row defaults to geopolitics", "", "", TypeGeopolitics},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(EventRow{EventType: tt.eventType, Sector: tt.sector})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScopeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		score *float64
		want  ImpactScope
	}{
		{"nil is regional", nil, ScopeRegional},
		{"global at threshold", f64(0.7), ScopeGlobal},
		{"global above", f64(0.95), ScopeGlobal},
		{"regional at threshold", f64(0.4), ScopeRegional},
		{"regional below global", f64(0.69), ScopeRegional},
		{"local below regional", f64(0.39), ScopeLocal},
		{"local at zero", f64(0), ScopeLocal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ScopeOf(tt.score))
		})
	}
}

// Scope must never shrink as the score grows.
func TestScopeOf_Monotonic(t *testing.T) {
	t.Parallel()

	rank := map[ImpactScope]int{ScopeLocal: 0, ScopeRegional: 1, ScopeGlobal: 2}
	prev := ScopeLocal
	for s := 0.0; s <= 1.0; s += 0.01 {
		cur := ScopeOf(&s)
		assert.GreaterOrEqualf(t, rank[cur], rank[prev], "scope shrank at score %.2f", s)
		prev = cur
	}
}

func TestImportanceOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 50, ImportanceOf(nil))
	assert.Equal(t, 30, ImportanceOf(f64(0.0)), "clamped to floor")
	assert.Equal(t, 30, ImportanceOf(f64(0.1)))
	assert.Equal(t, 30, ImportanceOf(f64(0.3)))
	assert.Equal(t, 72, ImportanceOf(f64(0.72)))
	assert.Equal(t, 100, ImportanceOf(f64(1.0)))
	assert.Equal(t, 100, ImportanceOf(f64(1.4)), "clamped to ceiling")
}

func TestConfidenceOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 60, ConfidenceOf(nil))
	assert.Equal(t, 50, ConfidenceOf(f64(0.2)), "clamped to floor")
	assert.Equal(t, 85, ConfidenceOf(f64(0.85)))
	assert.Equal(t, 100, ConfidenceOf(f64(1.2)), "clamped to ceiling")
}

func TestDateRange_Widen(t *testing.T) {
	t.Parallel()

	next, ok := Range24h.Widen()
	assert.True(t, ok)
	assert.Equal(t, Range7d, next)

	next, ok = Range7d.Widen()
	assert.True(t, ok)
	assert.Equal(t, Range30d, next)

	next, ok = Range30d.Widen()
	assert.False(t, ok)
	assert.Equal(t, Range30d, next)
}

func TestDateRange_Duration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Range7d.Duration(), 7*Range24h.Duration())
	assert.Equal(t, Range30d.Duration(), 30*Range24h.Duration())
	assert.Equal(t, Range24h.Duration(), DateRange("bogus").Duration(), "unknown ranges fall back to 24h")
}

func TestWatchlistEntities_IsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, WatchlistEntities{}.IsEmpty())
	assert.False(t, WatchlistEntities{Countries: []string{"France"}}.IsEmpty())
	assert.False(t, WatchlistEntities{EventIDs: []string{"e1"}}.IsEmpty())
}

//Personal.AI order the ending
