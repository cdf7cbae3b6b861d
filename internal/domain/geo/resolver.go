// Package geo resolves free-text place names to map coordinates using only
// the in-process dictionaries.  No network calls, no external geocoder: the
// resolver must keep working when every upstream dependency is down.
package geo

import (
	"strings"
)

// Point is a resolved map position.  Label carries the original candidate
// string that produced the match, not the dictionary key.
type Point struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Label string  `json:"label"`
}

// Resolver maps an ordered list of candidate place strings to a Point.
type Resolver interface {
	// Resolve tries each candidate in order and returns the first match,
	// or nil when no candidate resolves.  Never returns an error: a miss
	// is an expected outcome, not a failure.
	Resolve(candidates []string) *Point
}

// StaticResolver resolves against the compiled-in dictionaries.  Zero-value
// ready and safe for concurrent use.
type StaticResolver struct{}

// NewStaticResolver returns the shared offline resolver.
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{}
}

// compositeSeparators split candidates like "London, UK" or
// "France/Germany" into individually resolvable parts.
const compositeSeparators = ",;/"

// Resolve implements the candidate-order contract: every candidate is first
// tried whole (with normalisation variants), and only when all whole-string
// attempts miss are candidates decomposed into parts.  A whole-string match
// on a later candidate therefore beats a part match on an earlier one.
func (r *StaticResolver) Resolve(candidates []string) *Point {
	for _, cand := range candidates {
		if p := lookupVariants(normalize(cand), cand); p != nil {
			return p
		}
	}
	for _, cand := range candidates {
		if !strings.ContainsAny(cand, compositeSeparators) {
			continue
		}
		for _, part := range splitComposite(cand) {
			if p := lookupVariants(normalize(part), cand); p != nil {
				return p
			}
		}
	}
	return nil
}

// lookupVariants tries a normalised name and its reduction variants against
// both dictionaries, countries first.  label is attached verbatim to the
// returned point.
func lookupVariants(name, label string) *Point {
	if name == "" {
		return nil
	}
	tries := []string{name}
	if stripped := stripParenthetical(name); stripped != name && stripped != "" {
		tries = append(tries, stripped)
	}
	for _, t := range tries {
		if bare := strings.TrimPrefix(t, "the "); bare != t && bare != "" {
			tries = append(tries, bare)
		}
	}
	for _, t := range tries {
		if coords, ok := countryIndex[t]; ok {
			return &Point{Lat: coords[0], Lon: coords[1], Label: label}
		}
	}
	for _, t := range tries {
		if coords, ok := regionIndex[t]; ok {
			return &Point{Lat: coords[0], Lon: coords[1], Label: label}
		}
	}
	return nil
}

// normalize lowercases, trims, and collapses internal runs of whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// stripParenthetical removes a trailing parenthesised qualifier,
// e.g. "congo (drc)" → "congo".
func stripParenthetical(s string) string {
	i := strings.IndexByte(s, '(')
	if i < 0 {
		return s
	}
	return strings.TrimSpace(s[:i])
}

func splitComposite(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(compositeSeparators, r)
	})
}

//Personal.AI order the ending
