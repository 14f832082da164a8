package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/pzaitsev/user-records/internal/logger"
)

// HealthReadRepository performs the minimal round-trip used by the health
// endpoint to decide database readiness.
type HealthReadRepository struct {
	db *sqlx.DB
}

func NewHealthReadRepository(db *sqlx.DB) *HealthReadRepository {
	return &HealthReadRepository{db: db}
}

// Ready executes a trivial query against the database.
func (r *HealthReadRepository) Ready(ctx context.Context) error {
	const query = `SELECT 1`

	var one int
	err := r.db.GetContext(ctx, &one, query)

	logger.Log.Infow("query executed", "query", query, "error", err)

	return err
}
