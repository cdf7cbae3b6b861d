// Package repositories provides PostgreSQL-backed implementations of the
// overview pipeline's store interfaces.  Every public method accepts a
// context.Context and uses parameterised queries exclusively.
package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/signal"
	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/monitoring/logging"
	appErrors "github.com/turtacn/GeoSignal-Intelligence/pkg/errors"
)

// defaultRowCap bounds the primary event query before the pipeline applies
// its own per-output cap.
const defaultRowCap = 100

// EventRepository serves classified event rows to the aggregation pipeline
// and accepts new rows from the ingest worker.
type EventRepository struct {
	pool   *pgxpool.Pool
	logger Logger
	rowCap int
}

// NewEventRepository constructs a ready-to-use EventRepository.  rowCap <= 0
// selects the default upstream cap.
func NewEventRepository(pool *pgxpool.Pool, logger Logger, rowCap int) *EventRepository {
	if rowCap <= 0 {
		rowCap = defaultRowCap
	}
	return &EventRepository{pool: pool, logger: logger, rowCap: rowCap}
}

const queryCreatedAfterSQL = `
	SELECT id, event_type, sector, country, region, summary,
	       why_it_matters, first_order_effect, impact_score, confidence,
	       created_at, source_event_id
	FROM events
	WHERE created_at >= $1
	ORDER BY impact_score DESC NULLS LAST, created_at DESC
	LIMIT $2`

// QueryCreatedAfter returns rows created at or after since, sorted by impact
// score descending with nulls last, then recency descending, capped
// server-side.
func (r *EventRepository) QueryCreatedAfter(ctx context.Context, since time.Time) ([]signal.EventRow, error) {
	rows, err := r.pool.Query(ctx, queryCreatedAfterSQL, since, r.rowCap)
	if err != nil {
		r.logger.Error("EventRepository.QueryCreatedAfter", logging.Err(err))
		return nil, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "failed to query events")
	}
	defer rows.Close()

	out := make([]signal.EventRow, 0, r.rowCap)
	for rows.Next() {
		var (
			e                                 signal.EventRow
			sector, country, region           *string
			summary, whyItMatters, firstOrder *string
			sourceEventID                     *string
		)
		if err := rows.Scan(
			&e.ID, &e.EventType, &sector, &country, &region, &summary,
			&whyItMatters, &firstOrder, &e.ImpactScore, &e.Confidence,
			&e.CreatedAt, &sourceEventID,
		); err != nil {
			r.logger.Error("EventRepository.QueryCreatedAfter: scan", logging.Err(err))
			return nil, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "failed to scan event row")
		}
		e.Sector = deref(sector)
		e.Country = deref(country)
		e.Region = deref(region)
		e.Summary = deref(summary)
		e.WhyItMatters = deref(whyItMatters)
		e.FirstOrderEffect = deref(firstOrder)
		e.SourceEventID = deref(sourceEventID)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "event row iteration failed")
	}
	return out, nil
}

const insertEventSQL = `
	INSERT INTO events (
		id, event_type, sector, country, region, summary,
		why_it_matters, first_order_effect, impact_score, confidence,
		created_at, source_event_id
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	ON CONFLICT (id) DO NOTHING`

// Insert stores one classified event row.  Duplicate ids are ignored so the
// ingest consumer can safely re-deliver.
func (r *EventRepository) Insert(ctx context.Context, e signal.EventRow) error {
	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, insertEventSQL,
		e.ID, e.EventType, nilIfEmpty(e.Sector), nilIfEmpty(e.Country), nilIfEmpty(e.Region),
		nilIfEmpty(e.Summary), nilIfEmpty(e.WhyItMatters), nilIfEmpty(e.FirstOrderEffect),
		e.ImpactScore, e.Confidence, created, nilIfEmpty(e.SourceEventID),
	)
	if err != nil {
		r.logger.Error("EventRepository.Insert", logging.String("event_id", e.ID), logging.Err(err))
		return appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "failed to insert event")
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

//Personal.AI order the ending
