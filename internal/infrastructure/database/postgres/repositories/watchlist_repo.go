package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/signal"
	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/monitoring/logging"
	appErrors "github.com/turtacn/GeoSignal-Intelligence/pkg/errors"
)

// Watchlist entity kinds as stored in the entity_type column.
const (
	entityKindEvent   = "event"
	entityKindSector  = "sector"
	entityKindCountry = "country"
)

// WatchlistRepository resolves a user's watchlist entities for scope
// filtering.
type WatchlistRepository struct {
	pool   *pgxpool.Pool
	logger Logger
}

// NewWatchlistRepository constructs a ready-to-use WatchlistRepository.
func NewWatchlistRepository(pool *pgxpool.Pool, logger Logger) *WatchlistRepository {
	return &WatchlistRepository{pool: pool, logger: logger}
}

const getEntitiesSQL = `
	SELECT entity_type, entity_value
	FROM watchlist_entities
	WHERE user_id = $1`

// GetEntities returns the user's watchlist grouped by entity kind.  A user
// with no watchlist rows yields an empty result, not an error.
func (r *WatchlistRepository) GetEntities(ctx context.Context, userID string) (signal.WatchlistEntities, error) {
	var ents signal.WatchlistEntities

	rows, err := r.pool.Query(ctx, getEntitiesSQL, userID)
	if err != nil {
		r.logger.Error("WatchlistRepository.GetEntities", logging.String("user_id", userID), logging.Err(err))
		return ents, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "failed to query watchlist entities")
	}
	defer rows.Close()

	for rows.Next() {
		var kind, value string
		if err := rows.Scan(&kind, &value); err != nil {
			return signal.WatchlistEntities{}, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "failed to scan watchlist entity")
		}
		ents = bucketEntity(ents, kind, value)
	}
	if err := rows.Err(); err != nil {
		return signal.WatchlistEntities{}, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "watchlist iteration failed")
	}
	return ents, nil
}

// bucketEntity routes one row into the matching entity bucket.  Unknown
// kinds are dropped; they cannot participate in scope filtering.
func bucketEntity(ents signal.WatchlistEntities, kind, value string) signal.WatchlistEntities {
	switch kind {
	case entityKindEvent:
		ents.EventIDs = append(ents.EventIDs, value)
	case entityKindSector:
		ents.Sectors = append(ents.Sectors, value)
	case entityKindCountry:
		ents.Countries = append(ents.Countries, value)
	}
	return ents
}

//Personal.AI order the ending
