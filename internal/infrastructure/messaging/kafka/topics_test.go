package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/GeoSignal-Intelligence/pkg/errors"
)

func TestDecodeEventEnvelope(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		env, err := DecodeEventEnvelope([]byte(`{
			"id": "e1",
			"event_type": "supply_chain",
			"sector": "mining",
			"country": "Chile",
			"impact_score": 0.7,
			"created_at": "2026-03-10T08:00:00Z"
		}`))
		require.NoError(t, err)
		assert.Equal(t, "e1", env.ID)
		assert.Equal(t, "supply_chain", env.EventType)
		assert.Equal(t, "Chile", env.Country)
	})

	tests := []struct {
		name string
		data string
	}{
		{"malformed json", `{"id": `},
		{"missing id", `{"event_type": "market"}`},
		{"missing event type", `{"id": "e1"}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeEventEnvelope([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeIngestDecodeFailed, errors.GetCode(err))
		})
	}
}

func TestEventEnvelope_ToRow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("parses created_at", func(t *testing.T) {
		t.Parallel()

		env := EventEnvelope{ID: "e1", EventType: "market", CreatedAt: "2026-03-09T06:30:00Z"}
		row := env.ToRow(now)
		assert.Equal(t, time.Date(2026, 3, 9, 6, 30, 0, 0, time.UTC), row.CreatedAt)
	})

	t.Run("falls back to consume time", func(t *testing.T) {
		t.Parallel()

		row := EventEnvelope{ID: "e1", EventType: "market", CreatedAt: "yesterday-ish"}.ToRow(now)
		assert.Equal(t, now, row.CreatedAt)

		row = EventEnvelope{ID: "e1", EventType: "market"}.ToRow(now)
		assert.Equal(t, now, row.CreatedAt)
	})
}

//Personal.AI order the ending
