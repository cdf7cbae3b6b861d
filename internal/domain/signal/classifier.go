package signal

import (
	"math"
	"strings"
)

// classificationRule pairs a predicate over the normalised event type and
// sector with the resulting signal type.  Rules are evaluated strictly in
// order; the first hit wins.
type classificationRule struct {
	name   string
	match  func(eventType, sector string) bool
	result SignalType
}

var energyKeywords = []string{
	"energy", "oil", "gas", "power", "petroleum", "electricity",
	"nuclear", "pipeline", "renewable", "lng",
}

var materialKeywords = []string{
	"commodit", "material", "mining", "metal", "semiconductor",
	"logistics", "shipping", "manufactur", "agricultur", "rare earth",
}

var financeKeywords = []string{
	"financ", "bank", "equit", "bond", "currenc", "insurance",
}

// classificationRules is the full decision table.  Keyword rules scan both
// the event type and the sector; exact rules only look at the event type.
var classificationRules = []classificationRule{
	{
		name: "energy keywords",
		match: func(et, sec string) bool {
			return containsAny(et, energyKeywords) || containsAny(sec, energyKeywords)
		},
		result: TypeEnergy,
	},
	{
		name: "geopolitical event types",
		match: func(et, _ string) bool {
			return et == "geopolitical" || et == "regulatory" || et == "political" || et == "diplomatic"
		},
		result: TypeGeopolitics,
	},
	{
		name: "supply chain event types",
		match: func(et, _ string) bool {
			return et == "supply_chain" || et == "supply-chain" || et == "supplychain" || et == "industrial"
		},
		result: TypeSupplyChains,
	},
	{
		name: "market event types",
		match: func(et, _ string) bool {
			return et == "market" || et == "financial" || et == "economic"
		},
		result: TypeMarkets,
	},
	{
		name: "security event types",
		match: func(et, _ string) bool {
			return et == "security" || et == "military" || et == "conflict" || et == "cyber"
		},
		result: TypeSecurity,
	},
	{
		name: "material sectors",
		match: func(_, sec string) bool {
			return containsAny(sec, materialKeywords)
		},
		result: TypeSupplyChains,
	},
	{
		name: "finance sectors",
		match: func(_, sec string) bool {
			return containsAny(sec, financeKeywords)
		},
		result: TypeMarkets,
	},
}

// Classify maps an event row to its signal type.  Unmatched rows default to
// geopolitics: on a world news map that is the least-wrong bucket.
func Classify(row EventRow) SignalType {
	et := strings.ToLower(strings.TrimSpace(row.EventType))
	sec := strings.ToLower(strings.TrimSpace(row.Sector))
	for _, rule := range classificationRules {
		if rule.match(et, sec) {
			return rule.result
		}
	}
	return TypeGeopolitics
}

func containsAny(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// Scope thresholds over the raw impact score.
const (
	globalScopeThreshold   = 0.7
	regionalScopeThreshold = 0.4
)

// ScopeOf buckets a nullable impact score.  Missing scores land in the
// middle bucket so they are neither hidden by local-only views nor promoted
// to global prominence.
func ScopeOf(impactScore *float64) ImpactScope {
	if impactScore == nil {
		return ScopeRegional
	}
	switch {
	case *impactScore >= globalScopeThreshold:
		return ScopeGlobal
	case *impactScore >= regionalScopeThreshold:
		return ScopeRegional
	default:
		return ScopeLocal
	}
}

// Display-scale defaults and bounds.  Raw scores are 0..1; the map surfaces
// integers on a 0..100 scale clamped so markers stay legible.
const (
	defaultImpactScore = 0.5
	defaultConfidence  = 0.6

	minImportanceDisplay = 30
	maxImportanceDisplay = 100
	minConfidenceDisplay = 50
	maxConfidenceDisplay = 100
)

// ImportanceOf converts a nullable impact score to the clamped display
// importance.
func ImportanceOf(impactScore *float64) int {
	score := defaultImpactScore
	if impactScore != nil {
		score = *impactScore
	}
	return clampInt(int(math.Round(score*100)), minImportanceDisplay, maxImportanceDisplay)
}

// ConfidenceOf converts a nullable confidence to the clamped display
// confidence.
func ConfidenceOf(confidence *float64) int {
	c := defaultConfidence
	if confidence != nil {
		c = *confidence
	}
	return clampInt(int(math.Round(c*100)), minConfidenceDisplay, maxConfidenceDisplay)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

//Personal.AI order the ending
