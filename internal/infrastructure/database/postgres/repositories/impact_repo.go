package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/signal"
	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/monitoring/logging"
	appErrors "github.com/turtacn/GeoSignal-Intelligence/pkg/errors"
)

// ImpactRepository serves the corporate-impact rail.  It sits outside the
// geo pipeline; failures here degrade to an empty rail, never a failed map.
type ImpactRepository struct {
	pool   *pgxpool.Pool
	logger Logger
}

// NewImpactRepository constructs a ready-to-use ImpactRepository.
func NewImpactRepository(pool *pgxpool.Pool, logger Logger) *ImpactRepository {
	return &ImpactRepository{pool: pool, logger: logger}
}

const recentActiveSQL = `
	SELECT company_name, summary, generated_at
	FROM corporate_impacts
	WHERE status = 'active'
	ORDER BY generated_at DESC
	LIMIT $1`

// RecentActive returns the most recently generated active impacts.
func (r *ImpactRepository) RecentActive(ctx context.Context, limit int) ([]signal.CorporateImpact, error) {
	if limit <= 0 {
		limit = 3
	}

	rows, err := r.pool.Query(ctx, recentActiveSQL, limit)
	if err != nil {
		r.logger.Error("ImpactRepository.RecentActive", logging.Err(err))
		return nil, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "failed to query corporate impacts")
	}
	defer rows.Close()

	out := make([]signal.CorporateImpact, 0, limit)
	for rows.Next() {
		var impact signal.CorporateImpact
		if err := rows.Scan(&impact.Company, &impact.Headline, &impact.GeneratedAt); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "failed to scan corporate impact")
		}
		out = append(out, impact)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "corporate impact iteration failed")
	}
	return out, nil
}

//Personal.AI order the ending
