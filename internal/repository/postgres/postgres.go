package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Adityakr425/Swiftwy/internal/domain"
)

const schema = `
	CREATE TABLE IF NOT EXISTS traffic_snapshots (
		id             TEXT PRIMARY KEY,
		refreshed_at   TIMESTAMPTZ NOT NULL,
		avg_congestion DOUBLE PRECISION NOT NULL,
		segments       JSONB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_traffic_snapshots_refreshed_at
		ON traffic_snapshots (refreshed_at DESC);
`

// PostgresRepository implements domain.DataRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the snapshot table if it does not exist
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: failed to create schema: %w", err)
	}
	return nil
}

// SaveSnapshot persists one refresh of segment state
func (r *PostgresRepository) SaveSnapshot(ctx context.Context, snap domain.TrafficSnapshot) error {
	query := `
		INSERT INTO traffic_snapshots (id, refreshed_at, avg_congestion, segments)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, snap.ID, snap.RefreshedAt, averageCongestion(snap.Segments), snap.Segments)
	if err != nil {
		return fmt.Errorf("postgres: failed to save snapshot: %w", err)
	}

	return nil
}

// GetSnapshots retrieves snapshot history from PostgreSQL
func (r *PostgresRepository) GetSnapshots(ctx context.Context, from, to time.Time) ([]domain.TrafficSnapshot, error) {
	query := `
		SELECT id, refreshed_at, segments
		FROM traffic_snapshots
		WHERE refreshed_at BETWEEN $1 AND $2
		ORDER BY refreshed_at DESC
		LIMIT 100
	`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var results []domain.TrafficSnapshot
	for rows.Next() {
		var s domain.TrafficSnapshot
		if err := rows.Scan(&s.ID, &s.RefreshedAt, &s.Segments); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan snapshot row: %w", err)
		}
		results = append(results, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to read snapshots: %w", err)
	}

	return results, nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

func averageCongestion(states []domain.SegmentState) float64 {
	if len(states) == 0 {
		return 0
	}
	total := 0
	for _, s := range states {
		total += s.Congestion
	}
	return float64(total) / float64(len(states))
}
