package system

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"stellarforge/internal/accretion"
	"stellarforge/internal/planet"
	"stellarforge/internal/shared/database"
	"stellarforge/internal/shared/errors"
	"stellarforge/internal/stats"
	"stellarforge/internal/stellar"
)

// Service orchestrates one generate_system call end to end: resolve the
// seed, check the cache, run the accretion engine, post-process the
// survivors, persist, and cache the result.
type Service struct {
	repo       *Repository
	planetRepo *planet.Repository
	statsRepo  *stats.Repository
	cache      *Cache
	db         *database.DB
	constants  accretion.Constants
	logger     *slog.Logger
}

func NewService(repo *Repository, planetRepo *planet.Repository, statsRepo *stats.Repository, cache *Cache, db *database.DB, constants accretion.Constants, logger *slog.Logger) *Service {
	logger.Debug("Initializing system service")

	return &Service{
		repo:       repo,
		planetRepo: planetRepo,
		statsRepo:  statsRepo,
		cache:      cache,
		db:         db,
		constants:  constants,
		logger:     logger,
	}
}

// Generate resolves seed (or draws one from the wall clock), checks the
// cache, and on a miss samples a star, runs the accretion engine, persists
// everything and populates the cache for the next request.
func (s *Service) Generate(ctx context.Context, seed *uint64) (*GenerationResult, error) {
	resolvedSeed := accretion.ResolveSeed(seed)
	logger := s.logger.With("component", "system_service", "operation", "generate", "seed", resolvedSeed)

	if cached, ok := s.cache.Get(ctx, resolvedSeed); ok {
		logger.Info("Returning cached system")
		return cached, nil
	}

	if existing, err := s.repo.GetBySeed(ctx, resolvedSeed); err == nil {
		logger.Info("Found existing system for seed, skipping regeneration", "system_id", existing.ID)
		result, err := s.GetByID(ctx, existing.ID)
		if err != nil {
			return nil, err
		}
		s.cache.Set(ctx, resolvedSeed, *result)
		return result, nil
	}

	rand := accretion.NewLCG(resolvedSeed)
	star := stellar.NewGenerator(rand).GenerateStar()
	logger.Info("Sampled primary star", "class", star.Class, "mass_solar", star.MassSolar, "luminosity_solar", star.LuminositySolar)

	driver, err := accretion.NewDriver(star, s.constants, rand, logger)
	if err != nil {
		return nil, errors.WrapInternal("failed to construct accretion driver", err)
	}

	result := driver.GenerateSystem(resolvedSeed)
	logger.Info("Accretion run complete", "planet_count", len(result.Planets), "injected_nuclei", result.Stats.InjectedNuclei, "merged_nuclei", result.Stats.MergedNuclei)

	planets := BuildPlanets(result, star, s.constants)

	persisted, err := s.persist(ctx, resolvedSeed, star, planets, result.Stats)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, resolvedSeed, *persisted)
	return persisted, nil
}

// persist writes the system, its planets and its run stats within a
// single transaction, so a failure partway through never leaves an
// orphaned system row.
func (s *Service) persist(ctx context.Context, seed uint64, star stellar.Star, planets []planet.Planet, genStats accretion.Stats) (*GenerationResult, error) {
	logger := s.logger.With("component", "system_service", "operation", "persist", "seed", seed)

	tx, err := s.db.BeginTxContext(ctx)
	if err != nil {
		return nil, errors.WrapInternal("failed to begin transaction", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			logger.Error("Failed to rollback transaction", "error", rbErr)
		}
	}()

	sys := starToSystem(star, seed, len(planets))

	createdSystem, err := s.repo.Create(ctx, sys, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist system: %w", err)
	}

	createdPlanets, err := s.planetRepo.CreatePlanetsBatch(ctx, createdSystem.ID, planets, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist planets: %w", err)
	}

	createdStats, err := s.statsRepo.Create(ctx, createdSystem.ID, genStats.InjectedNuclei, genStats.MergedNuclei, genStats.ElapsedMs, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.WrapInternal("failed to commit transaction", err)
	}

	logger.Info("System persisted", "system_id", createdSystem.ID, "planet_count", len(createdPlanets))

	return &GenerationResult{
		System:  *createdSystem,
		Planets: createdPlanets,
		Stats:   *createdStats,
	}, nil
}

// GetByID retrieves a previously generated system together with its
// planets and stats.
func (s *Service) GetByID(ctx context.Context, id int) (*GenerationResult, error) {
	sys, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundf("system %d not found", id)
	}

	planets, err := s.planetRepo.GetPlanetsBySystemID(ctx, id)
	if err != nil {
		return nil, errors.WrapInternal("failed to load planets", err)
	}

	systemStats, err := s.statsRepo.GetBySystemID(ctx, id)
	if err != nil {
		return nil, errors.WrapInternal("failed to load stats", err)
	}

	return &GenerationResult{System: *sys, Planets: planets, Stats: *systemStats}, nil
}

// GetPlanets retrieves only a system's planets, in orbital order.
func (s *Service) GetPlanets(ctx context.Context, systemID int) ([]planet.Planet, error) {
	if _, err := s.repo.GetByID(ctx, systemID); err != nil {
		return nil, errors.NotFoundf("system %d not found", systemID)
	}
	return s.planetRepo.GetPlanetsBySystemID(ctx, systemID)
}

// GetStats retrieves only a system's recorded run statistics.
func (s *Service) GetStats(ctx context.Context, systemID int) (*stats.Stats, error) {
	if _, err := s.repo.GetByID(ctx, systemID); err != nil {
		return nil, errors.NotFoundf("system %d not found", systemID)
	}
	return s.statsRepo.GetBySystemID(ctx, systemID)
}

// GetStatsAggregate summarizes run statistics across every system ever
// generated.
func (s *Service) GetStatsAggregate(ctx context.Context) (*stats.Aggregate, error) {
	return s.statsRepo.GetAggregate(ctx)
}

// Regenerate re-runs generation for a system's original seed. Since the
// engine is deterministic this reproduces the same star and planets, but
// it persists a fresh system row rather than mutating the existing one;
// exposed only to admin operators for that reason.
func (s *Service) Regenerate(ctx context.Context, id int) (*GenerationResult, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundf("system %d not found", id)
	}

	seed := existing.Seed
	logger := s.logger.With("component", "system_service", "operation", "regenerate", "seed", seed)

	rand := accretion.NewLCG(seed)
	star := stellar.NewGenerator(rand).GenerateStar()

	driver, err := accretion.NewDriver(star, s.constants, rand, logger)
	if err != nil {
		return nil, errors.WrapInternal("failed to construct accretion driver", err)
	}

	result := driver.GenerateSystem(seed)
	planets := BuildPlanets(result, star, s.constants)

	return s.persist(ctx, seed, star, planets, result.Stats)
}

func starToSystem(star stellar.Star, seed uint64, planetCount int) System {
	return System{
		Seed:                seed,
		StarClass:           star.Class,
		StarSubclass:        star.Subclass,
		StarMassSolar:       star.MassSolar,
		StarLuminositySolar: star.LuminositySolar,
		StarTemperatureK:    star.TemperatureK,
		StarRadiusSolar:     star.RadiusSolar,
		StarAgeGyr:          star.AgeGyr,
		PlanetCount:         planetCount,
	}
}
