package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticResolver_Resolve(t *testing.T) {
	t.Parallel()

	r := NewStaticResolver()

	tests := []struct {
		name       string
		candidates []string
		wantLat    float64
		wantLon    float64
		wantLabel  string
		wantMiss   bool
	}{
		{
			name:       "country english",
			candidates: []string{"France"},
			wantLat:    46.6, wantLon: 2.2, wantLabel: "France",
		},
		{
			name:       "country french spelling",
			candidates: []string{"Allemagne"},
			wantLat:    51.2, wantLon: 10.4, wantLabel: "Allemagne",
		},
		{
			name:       "abbreviation",
			candidates: []string{"UK"},
			wantLat:    54.8, wantLon: -2.9, wantLabel: "UK",
		},
		{
			name:       "drc long form",
			candidates: []string{"Democratic Republic of the Congo"},
			wantLat:    -2.9, wantLon: 23.4, wantLabel: "Democratic Republic of the Congo",
		},
		{
			name:       "region zone",
			candidates: []string{"Middle East"},
			wantLat:    29.3, wantLon: 42.6, wantLabel: "Middle East",
		},
		{
			name:       "city",
			candidates: []string{"Tokyo"},
			wantLat:    35.68, wantLon: 139.69, wantLabel: "Tokyo",
		},
		{
			name:       "parenthetical stripped",
			candidates: []string{"Taiwan (ROC)"},
			wantLat:    23.7, wantLon: 121.0, wantLabel: "Taiwan (ROC)",
		},
		{
			name:       "leading the stripped",
			candidates: []string{"The Netherlands"},
			wantLat:    52.1, wantLon: 5.3, wantLabel: "The Netherlands",
		},
		{
			name:       "composite falls back to parts",
			candidates: []string{"London, United Kingdom of Nowhere"},
			wantLat:    51.51, wantLon: -0.13, wantLabel: "London, United Kingdom of Nowhere",
		},
		{
			name:       "composite slash",
			candidates: []string{"Atlantis/Brazil"},
			wantLat:    -14.2, wantLon: -51.9, wantLabel: "Atlantis/Brazil",
		},
		{
			name:       "first candidate wins",
			candidates: []string{"Japan", "France"},
			wantLat:    36.2, wantLon: 138.3, wantLabel: "Japan",
		},
		{
			name:       "whole match on later candidate beats part match on earlier",
			candidates: []string{"Narnia, Oz", "Kenya"},
			wantLat:    0.0, wantLon: 37.9, wantLabel: "Kenya",
		},
		{
			name:       "whitespace and case insensitive",
			candidates: []string{"  sOuTh   AFRICA  "},
			wantLat:    -30.6, wantLon: 22.9, wantLabel: "  sOuTh   AFRICA  ",
		},
		{
			name:       "miss",
			candidates: []string{"Unknown Place", "Atlantis"},
			wantMiss:   true,
		},
		{
			name:       "empty candidates",
			candidates: nil,
			wantMiss:   true,
		},
		{
			name:       "blank candidate skipped",
			candidates: []string{"", "   ", "Norvège"},
			wantLat:    60.5, wantLon: 8.5, wantLabel: "Norvège",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := r.Resolve(tt.candidates)
			if tt.wantMiss {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, tt.wantLat, got.Lat, 0.001)
			assert.InDelta(t, tt.wantLon, got.Lon, 0.001)
			assert.Equal(t, tt.wantLabel, got.Label)
		})
	}
}

func TestStaticResolver_CountryBeatsRegionForSameString(t *testing.T) {
	t.Parallel()

	// "Georgia" is both a country and a US state; the dictionaries only
	// carry the country and the lookup order guarantees it wins.
	got := NewStaticResolver().Resolve([]string{"Georgia"})
	require.NotNil(t, got)
	assert.InDelta(t, 42.3, got.Lat, 0.001)
}

func TestDictionaries_NoOverlapAcrossTables(t *testing.T) {
	t.Parallel()

	for name := range regionIndex {
		_, dup := countryIndex[name]
		assert.Falsef(t, dup, "name %q present in both tables", name)
	}
}

//Personal.AI order the ending
