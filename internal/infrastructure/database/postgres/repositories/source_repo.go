package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/monitoring/logging"
	appErrors "github.com/turtacn/GeoSignal-Intelligence/pkg/errors"
)

// SourceRepository cross-references events against their originating news
// sources for the source-enablement filter.
type SourceRepository struct {
	pool   *pgxpool.Pool
	logger Logger
}

// NewSourceRepository constructs a ready-to-use SourceRepository.
func NewSourceRepository(pool *pgxpool.Pool, logger Logger) *SourceRepository {
	return &SourceRepository{pool: pool, logger: logger}
}

const eventIDsForSourcesSQL = `
	SELECT DISTINCT event_id
	FROM event_sources
	WHERE event_id = ANY($1)
	  AND source = ANY($2)
	  AND enabled`

// EventIDsForSources returns the subset of eventIDs that originate from at
// least one of the named enabled sources.
func (r *SourceRepository) EventIDsForSources(ctx context.Context, eventIDs, sources []string) ([]string, error) {
	if len(eventIDs) == 0 || len(sources) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, eventIDsForSourcesSQL, eventIDs, sources)
	if err != nil {
		r.logger.Error("SourceRepository.EventIDsForSources", logging.Err(err))
		return nil, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "failed to query event sources")
	}
	defer rows.Close()

	out := make([]string, 0, len(eventIDs))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "failed to scan event source row")
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "event source iteration failed")
	}
	return out, nil
}

//Personal.AI order the ending
