// Package kafka consumes classified-event messages and writes them into the
// event store that backs the overview map.
package kafka

import (
	"encoding/json"
	"time"

	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/signal"
	"github.com/turtacn/GeoSignal-Intelligence/pkg/errors"
)

// TopicEventsClassified carries one classified event per message, JSON
// encoded, keyed by event id.
const TopicEventsClassified = "events.classified"

// EventEnvelope is the wire shape of one classified event.
type EventEnvelope struct {
	ID               string   `json:"id"`
	EventType        string   `json:"event_type"`
	Sector           string   `json:"sector,omitempty"`
	Country          string   `json:"country,omitempty"`
	Region           string   `json:"region,omitempty"`
	Summary          string   `json:"summary,omitempty"`
	WhyItMatters     string   `json:"why_it_matters,omitempty"`
	FirstOrderEffect string   `json:"first_order_effect,omitempty"`
	ImpactScore      *float64 `json:"impact_score,omitempty"`
	Confidence       *float64 `json:"confidence,omitempty"`
	CreatedAt        string   `json:"created_at,omitempty"` // RFC 3339
	SourceEventID    string   `json:"source_event_id,omitempty"`
}

// DecodeEventEnvelope parses and validates one message payload.
func DecodeEventEnvelope(data []byte) (EventEnvelope, error) {
	var env EventEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return env, errors.Wrap(err, errors.ErrCodeIngestDecodeFailed, "malformed event message")
	}
	if env.ID == "" {
		return env, errors.New(errors.ErrCodeIngestDecodeFailed, "event message missing id")
	}
	if env.EventType == "" {
		return env, errors.New(errors.ErrCodeIngestDecodeFailed, "event message missing event_type")
	}
	return env, nil
}

// ToRow converts the envelope to a store row.  An unparseable or absent
// created_at falls back to the consume time.
func (e EventEnvelope) ToRow(now time.Time) signal.EventRow {
	created := now.UTC()
	if e.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, e.CreatedAt); err == nil {
			created = t
		}
	}
	return signal.EventRow{
		ID:               e.ID,
		EventType:        e.EventType,
		Sector:           e.Sector,
		Country:          e.Country,
		Region:           e.Region,
		Summary:          e.Summary,
		WhyItMatters:     e.WhyItMatters,
		FirstOrderEffect: e.FirstOrderEffect,
		ImpactScore:      e.ImpactScore,
		Confidence:       e.Confidence,
		CreatedAt:        created,
		SourceEventID:    e.SourceEventID,
	}
}

//Personal.AI order the ending
