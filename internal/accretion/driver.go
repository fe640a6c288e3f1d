package accretion

import (
	"log/slog"
	"sort"
	"time"
)

// Driver runs one generate_system call: INIT -> SEEDED -> LOOP (SWEEP ->
// MAYBE_MERGE -> UPDATE_DISC) -> TERMINAL. It owns the dust-band sequence,
// the planetesimal list, the stats and the random source for the duration
// of the call; nothing it touches is shared across calls.
type Driver struct {
	Calculator *Calculator
	Constants  Constants
	Rand       RandomSource
	Insertion  *InsertionStrategy
	Logger     *slog.Logger
}

// NewDriver validates constants at construction (configuration errors fail
// fast) and wires the calculator and insertion strategy around the given
// star, constants and random source.
func NewDriver(star Star, constants Constants, rand RandomSource, logger *slog.Logger) (*Driver, error) {
	if err := constants.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Driver{
		Calculator: NewCalculator(star, constants),
		Constants:  constants,
		Rand:       rand,
		Insertion:  NewInsertionStrategy(constants, rand),
		Logger:     logger,
	}, nil
}

// Result is the outcome of one generate_system call.
type Result struct {
	Seed    uint64
	Planets []ProtoPlanet
	Stats   Stats
}

// GenerateSystem runs the full accretion loop for the given seed and
// returns the surviving planetesimals in ascending-axis order.
func (d *Driver) GenerateSystem(seed uint64) *Result {
	start := time.Now()
	logger := d.Logger.With("component", "accretion_driver", "operation", "generate_system", "seed", seed)

	d.Rand.SetSeed(seed)

	stats := Stats{}
	bands := []DustBand{{
		InnerEdge: 0,
		OuterEdge: d.Calculator.OuterDustLimit(),
		HasDust:   true,
		HasGas:    true,
	}}
	var planets []ProtoPlanet

	for IsDustAvailable(bands, d.Constants.InnermostPlanet, d.Constants.OutermostPlanet) {
		if stats.InjectedNuclei >= d.Constants.MaxInjections {
			logger.Warn("accretion loop exceeded max injections, aborting",
				"injected_nuclei", stats.InjectedNuclei, "max_injections", d.Constants.MaxInjections)
			break
		}

		axis, ok := d.Insertion.SemiMajorAxis(stats.InjectedNuclei, bands)
		if !ok {
			break
		}
		ecc := d.Insertion.Eccentricity()

		proto := ProtoPlanet{Axis: axis, Ecc: ecc, Mass: d.Constants.ProtoplanetMass}
		stats.InjectedNuclei++
		logger.Info("injected nucleus", "axis", proto.Axis, "ecc", proto.Ecc)

		proto = d.sweep(proto, bands)

		if proto.Mass <= d.Constants.ProtoplanetMass {
			logger.Debug("rejected small-mass candidate", "axis", proto.Axis, "mass", proto.Mass)
			continue
		}

		mergedIndex := -1
		for i := range planets {
			if tooClose(d.Calculator, planets[i], proto) {
				mergedIndex = i
				break
			}
		}

		if mergedIndex >= 0 {
			stats.MergedNuclei++
			neighbor := planets[mergedIndex]
			logger.Info("merging nuclei", "neighbor_axis", neighbor.Axis, "candidate_axis", proto.Axis)

			coalesced := Coalesce(neighbor, proto)
			coalesced = d.sweep(coalesced, bands)
			// coalesced's axis is the mass-weighted mean of neighbor and
			// candidate, which can land past the next element's axis, so
			// the merged body is repositioned rather than overwritten in
			// place: removing it first keeps every subsequent scan and
			// insertSorted's binary search operating on a sorted slice.
			planets = append(planets[:mergedIndex], planets[mergedIndex+1:]...)
			planets = insertSorted(planets, coalesced)
			proto = coalesced
		} else {
			planets = insertSorted(planets, proto)
		}

		bands = Merge(Split(bands, proto, !proto.IsGasGiant(d.Calculator), d.Calculator))
		logger.Debug("disc updated", "band_count", len(bands))
	}

	stats.ElapsedMs = time.Since(start).Milliseconds()

	return &Result{Seed: seed, Planets: planets, Stats: stats}
}

// sweep runs the SWEEP phase for one protoplanet: repeatedly accumulating
// mass from overlapping bands until growth falls below MassConvergence.
func (d *Driver) sweep(proto ProtoPlanet, bands []DustBand) ProtoPlanet {
	for {
		last := proto.Mass
		sweepInner, sweepOuter := proto.SweepLimits(d.Calculator)
		critMass := proto.CriticalMass(d.Calculator)
		isGiant := proto.Mass > critMass

		var next float64
		for _, b := range bands {
			if !(b.OuterEdge > sweepInner && b.InnerEdge < sweepOuter) {
				continue
			}

			var density float64
			if b.HasDust {
				density = d.Calculator.DustDensity(proto.Axis)
				if b.HasGas && isGiant {
					density = d.Calculator.DustAndGasDensity(density, critMass, proto.Mass)
				}
			}

			vol := d.Calculator.BandVolume(proto.Mass, proto.Axis, proto.Ecc, sweepInner, sweepOuter, b.InnerEdge, b.OuterEdge)
			next += density * vol
		}

		if next > last {
			proto.Mass = next
		}

		if last <= 0 || (proto.Mass-last)/last <= d.Constants.MassConvergence {
			break
		}
	}

	return proto
}

// insertSorted inserts proto into planets, keeping ascending-axis order.
func insertSorted(planets []ProtoPlanet, proto ProtoPlanet) []ProtoPlanet {
	idx := sort.Search(len(planets), func(i int) bool { return planets[i].Axis >= proto.Axis })
	planets = append(planets, ProtoPlanet{})
	copy(planets[idx+1:], planets[idx:])
	planets[idx] = proto
	return planets
}
