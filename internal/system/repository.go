package system

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
	logger.Debug("Initializing system repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) getExecutor(tx *database.Tx) database.Executor {
	if tx != nil {
		return tx
	}
	return r.db
}

// Create persists a freshly generated system's star and planet count. tx
// lets the caller persist the system and its planets atomically.
func (r *Repository) Create(ctx context.Context, sys System, tx *database.Tx) (*System, error) {
	exec := r.getExecutor(tx)

	logger := r.logger.With(
		"component", "system_repository",
		"operation", "create",
		"seed", sys.Seed,
		"star_class", sys.StarClass,
	)
	logger.Debug("Creating system")

	query := `
		INSERT INTO systems (seed, star_class, star_subclass, star_mass_solar, star_luminosity_solar, star_temperature_k, star_radius_solar, star_age_gyr, planet_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, seed, star_class, star_subclass, star_mass_solar, star_luminosity_solar, star_temperature_k, star_radius_solar, star_age_gyr, planet_count, created_at
	`

	var created System
	err := exec.QueryRowContext(ctx, query,
		sys.Seed, sys.StarClass, sys.StarSubclass, sys.StarMassSolar, sys.StarLuminositySolar,
		sys.StarTemperatureK, sys.StarRadiusSolar, sys.StarAgeGyr, sys.PlanetCount,
	).Scan(
		&created.ID, &created.Seed, &created.StarClass, &created.StarSubclass,
		&created.StarMassSolar, &created.StarLuminositySolar, &created.StarTemperatureK,
		&created.StarRadiusSolar, &created.StarAgeGyr, &created.PlanetCount, &created.CreatedAt,
	)
	if err != nil {
		logger.Error("Failed to create system", "error", err)
		return nil, fmt.Errorf("failed to create system: %w", err)
	}

	logger.Debug("System created successfully", "system_id", created.ID)
	return &created, nil
}

// GetByID retrieves a system by its primary key.
func (r *Repository) GetByID(ctx context.Context, id int) (*System, error) {
	logger := r.logger.With("component", "system_repository", "operation", "get_by_id", "system_id", id)
	logger.Debug("Getting system by ID")

	query := `
		SELECT id, seed, star_class, star_subclass, star_mass_solar, star_luminosity_solar, star_temperature_k, star_radius_solar, star_age_gyr, planet_count, created_at
		FROM systems
		WHERE id = $1
	`

	var sys System
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sys.ID, &sys.Seed, &sys.StarClass, &sys.StarSubclass,
		&sys.StarMassSolar, &sys.StarLuminositySolar, &sys.StarTemperatureK,
		&sys.StarRadiusSolar, &sys.StarAgeGyr, &sys.PlanetCount, &sys.CreatedAt,
	)
	if err != nil {
		logger.Debug("System not found", "error", err)
		return nil, fmt.Errorf("failed to get system: %w", err)
	}

	return &sys, nil
}

// GetBySeed retrieves a previously persisted system by its seed, used to
// skip regeneration when the same seed is requested twice and the cache
// has already expired.
func (r *Repository) GetBySeed(ctx context.Context, seed uint64) (*System, error) {
	logger := r.logger.With("component", "system_repository", "operation", "get_by_seed", "seed", seed)
	logger.Debug("Getting system by seed")

	query := `
		SELECT id, seed, star_class, star_subclass, star_mass_solar, star_luminosity_solar, star_temperature_k, star_radius_solar, star_age_gyr, planet_count, created_at
		FROM systems
		WHERE seed = $1
	`

	var sys System
	err := r.db.QueryRowContext(ctx, query, seed).Scan(
		&sys.ID, &sys.Seed, &sys.StarClass, &sys.StarSubclass,
		&sys.StarMassSolar, &sys.StarLuminositySolar, &sys.StarTemperatureK,
		&sys.StarRadiusSolar, &sys.StarAgeGyr, &sys.PlanetCount, &sys.CreatedAt,
	)
	if err != nil {
		logger.Debug("System not found for seed", "error", err)
		return nil, fmt.Errorf("failed to get system by seed: %w", err)
	}

	return &sys, nil
}
