package overview

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/signal"
)

func TestDemoSignals(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	got := DemoSignals(now)

	require.Len(t, got, demoSignalCount)
	assert.Equal(t, got, DemoSignals(now), "deterministic for a fixed anchor")

	keys := map[string]struct{}{}
	for i, s := range got {
		assert.Equal(t, fmt.Sprintf("demo-%d", i+1), s.ID)
		assert.GreaterOrEqual(t, s.Importance, 30)
		assert.LessOrEqual(t, s.Importance, 100)
		assert.GreaterOrEqual(t, s.Confidence, 50)
		assert.LessOrEqual(t, s.Confidence, 100)
		assert.True(t, s.OccurredAt.Before(now))
		key := fmt.Sprintf("%.2f:%.2f", s.Lat, s.Lon)
		_, dup := keys[key]
		assert.Falsef(t, dup, "duplicate demo coordinate %s", key)
		keys[key] = struct{}{}
	}
}

func TestDemoTopEvents(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	got := DemoTopEvents(now)

	require.Len(t, got, 3)
	for _, e := range got {
		assert.NotEmpty(t, e.Title)
		assert.Equal(t, signal.SummarySourceInternal, e.Source)
	}
}

func TestDemoTopImpacts(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	got := DemoTopImpacts(now)

	require.Len(t, got, 3)
	for _, impact := range got {
		assert.NotEmpty(t, impact.Company)
		assert.NotEmpty(t, impact.Headline)
		assert.True(t, impact.GeneratedAt.Before(now))
	}
}

//Personal.AI order the ending
