package planet

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"stellarforge/internal/shared/database"
)

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing planet repository")

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

// batchInsertRow mirrors Planet's fields in the shape json_array_elements
// expects; PlanetIndex and SystemID are set by the caller before marshaling.
type batchInsertRow struct {
	SystemID      int
	PlanetIndex   int
	AxisAU        float64
	Eccentricity  float64
	MassEarth     float64
	RadiusEarth   float64
	IsGasGiant    bool
	HasAtmosphere bool
	Zone          string
	UWPCode       string
}

// CreatePlanetsBatch persists every planet of a finished generation run in
// a single round trip via Postgres's json_array_elements, rather than one
// INSERT per planet.
func (r *Repository) CreatePlanetsBatch(ctx context.Context, systemID int, planets []Planet, tx *database.Tx) ([]Planet, error) {
	if len(planets) == 0 {
		return []Planet{}, nil
	}

	exec := r.getExecutor(tx)

	logger := r.logger.With(
		"component", "planet_repository",
		"operation", "create_planets_batch",
		"system_id", systemID,
		"count", len(planets),
	)
	logger.Debug("Creating planets in batch")

	rows := make([]batchInsertRow, len(planets))
	for i, p := range planets {
		rows[i] = batchInsertRow{
			SystemID:      systemID,
			PlanetIndex:   i,
			AxisAU:        p.AxisAU,
			Eccentricity:  p.Eccentricity,
			MassEarth:     p.MassEarth,
			RadiusEarth:   p.RadiusEarth,
			IsGasGiant:    p.IsGasGiant,
			HasAtmosphere: p.HasAtmosphere,
			Zone:          string(p.Zone),
			UWPCode:       string(p.UWPCode),
		}
	}

	rowsJSON, err := json.Marshal(rows)
	if err != nil {
		logger.Error("Failed to marshal planets to JSON", "error", err)
		return nil, fmt.Errorf("failed to marshal planets: %w", err)
	}

	query := `
		INSERT INTO planets (system_id, planet_index, axis_au, eccentricity, mass_earth, radius_earth, is_gas_giant, has_atmosphere, zone, uwp_code)
		SELECT
			(data->>'SystemID')::integer,
			(data->>'PlanetIndex')::integer,
			(data->>'AxisAU')::double precision,
			(data->>'Eccentricity')::double precision,
			(data->>'MassEarth')::double precision,
			(data->>'RadiusEarth')::double precision,
			(data->>'IsGasGiant')::boolean,
			(data->>'HasAtmosphere')::boolean,
			data->>'Zone',
			data->>'UWPCode'
		FROM json_array_elements($1::json) AS data
		RETURNING id, system_id, planet_index, axis_au, eccentricity, mass_earth, radius_earth, is_gas_giant, has_atmosphere, zone, uwp_code`

	result, err := exec.QueryContext(ctx, query, string(rowsJSON))
	if err != nil {
		logger.Error("Failed to batch create planets", "error", err)
		return nil, fmt.Errorf("failed to batch create planets: %w", err)
	}
	defer func() {
		if err := result.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	var created []Planet
	for result.Next() {
		var p Planet
		if err := result.Scan(
			&p.ID,
			&p.SystemID,
			&p.PlanetIndex,
			&p.AxisAU,
			&p.Eccentricity,
			&p.MassEarth,
			&p.RadiusEarth,
			&p.IsGasGiant,
			&p.HasAtmosphere,
			&p.Zone,
			&p.UWPCode,
		); err != nil {
			logger.Error("Failed to scan planet row", "error", err)
			return nil, fmt.Errorf("failed to scan planet: %w", err)
		}
		created = append(created, p)
	}

	if err := result.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, fmt.Errorf("error iterating planets: %w", err)
	}

	logger.Info("Planets batch created successfully", "count", len(created))
	return created, nil
}

// GetPlanetsBySystemID returns a system's planets in ascending planet_index
// order, matching ascending orbital axis.
func (r *Repository) GetPlanetsBySystemID(ctx context.Context, systemID int) ([]Planet, error) {
	logger := r.logger.With("component", "planet_repository", "operation", "get_planets_by_system", "system_id", systemID)
	logger.Debug("Getting planets by system ID")

	query := `
		SELECT id, system_id, planet_index, axis_au, eccentricity, mass_earth, radius_earth, is_gas_giant, has_atmosphere, zone, uwp_code
		FROM planets
		WHERE system_id = $1
		ORDER BY planet_index
	`

	rows, err := r.db.QueryContext(ctx, query, systemID)
	if err != nil {
		logger.Error("Failed to query planets", "error", err)
		return nil, fmt.Errorf("failed to query planets: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	var planets []Planet
	for rows.Next() {
		var p Planet
		if err := rows.Scan(
			&p.ID,
			&p.SystemID,
			&p.PlanetIndex,
			&p.AxisAU,
			&p.Eccentricity,
			&p.MassEarth,
			&p.RadiusEarth,
			&p.IsGasGiant,
			&p.HasAtmosphere,
			&p.Zone,
			&p.UWPCode,
		); err != nil {
			logger.Error("Failed to scan planet row", "error", err)
			return nil, fmt.Errorf("failed to scan planet: %w", err)
		}
		planets = append(planets, p)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, fmt.Errorf("error iterating planets: %w", err)
	}

	logger.Debug("Planets retrieved", "count", len(planets))
	return planets, nil
}
