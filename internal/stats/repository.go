package stats

import (
	"context"
	"fmt"
	"log/slog"

	"stellarforge/internal/shared/database"
)

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing stats repository")

	return &Repository{db: db, logger: logger}
}

func (r *Repository) getExecutor(tx *database.Tx) database.Executor {
	if tx != nil {
		return tx
	}
	return r.db
}

// Create persists one generation run's stats, scoped to its system.
func (r *Repository) Create(ctx context.Context, systemID int, injected, merged int, elapsedMs int64, tx *database.Tx) (*Stats, error) {
	exec := r.getExecutor(tx)

	logger := r.logger.With("component", "stats_repository", "operation", "create", "system_id", systemID)
	logger.Debug("Recording generation stats")

	query := `
		INSERT INTO simulation_stats (system_id, injected_nuclei, merged_nuclei, elapsed_ms)
		VALUES ($1, $2, $3, $4)
		RETURNING id, system_id, injected_nuclei, merged_nuclei, elapsed_ms, created_at
	`

	var s Stats
	err := exec.QueryRowContext(ctx, query, systemID, injected, merged, elapsedMs).Scan(
		&s.ID, &s.SystemID, &s.InjectedNuclei, &s.MergedNuclei, &s.ElapsedMs, &s.CreatedAt,
	)
	if err != nil {
		logger.Error("Failed to record stats", "error", err)
		return nil, fmt.Errorf("failed to record stats: %w", err)
	}

	logger.Debug("Stats recorded", "stats_id", s.ID)
	return &s, nil
}

// GetBySystemID returns the stats recorded for a system's generation run,
// if any.
func (r *Repository) GetBySystemID(ctx context.Context, systemID int) (*Stats, error) {
	logger := r.logger.With("component", "stats_repository", "operation", "get_by_system", "system_id", systemID)
	logger.Debug("Getting stats by system ID")

	query := `
		SELECT id, system_id, injected_nuclei, merged_nuclei, elapsed_ms, created_at
		FROM simulation_stats
		WHERE system_id = $1
	`

	var s Stats
	err := r.db.QueryRowContext(ctx, query, systemID).Scan(
		&s.ID, &s.SystemID, &s.InjectedNuclei, &s.MergedNuclei, &s.ElapsedMs, &s.CreatedAt,
	)
	if err != nil {
		logger.Debug("No stats found for system", "error", err)
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return &s, nil
}

// GetAggregate summarizes stats across every recorded run.
func (r *Repository) GetAggregate(ctx context.Context) (*Aggregate, error) {
	logger := r.logger.With("component", "stats_repository", "operation", "get_aggregate")
	logger.Debug("Computing stats aggregate")

	query := `
		SELECT
			COUNT(*),
			COALESCE(AVG(injected_nuclei), 0),
			COALESCE(AVG(merged_nuclei), 0),
			COALESCE(AVG(elapsed_ms), 0),
			COALESCE(MAX(elapsed_ms), 0)
		FROM simulation_stats
	`

	var a Aggregate
	err := r.db.QueryRowContext(ctx, query).Scan(
		&a.RunCount, &a.AverageInjectedNuclei, &a.AverageMergedNuclei, &a.AverageElapsedMs, &a.MaxElapsedMs,
	)
	if err != nil {
		logger.Error("Failed to compute aggregate", "error", err)
		return nil, fmt.Errorf("failed to compute aggregate: %w", err)
	}

	return &a, nil
}
