package accretion

import "math"

// InsertionStrategy samples candidate planetesimals. Early injections
// explore the whole legal range; once RandomisedCount injections have
// happened, sampling biases toward bands that still carry dust, which
// accelerates termination as the disc empties out.
type InsertionStrategy struct {
	constants Constants
	rand      RandomSource
}

func NewInsertionStrategy(constants Constants, rand RandomSource) *InsertionStrategy {
	return &InsertionStrategy{constants: constants, rand: rand}
}

// SemiMajorAxis draws a candidate axis. It returns ok=false only when no
// dusted band overlaps the legal range, which the driver's own dust
// availability guard already treats as loop termination.
func (s *InsertionStrategy) SemiMajorAxis(injectedCount int, bands []DustBand) (axis float64, ok bool) {
	if injectedCount < s.constants.RandomisedCount {
		span := s.constants.OutermostPlanet - s.constants.InnermostPlanet
		return s.constants.InnermostPlanet + s.rand.Uniform()*span, true
	}

	type clippedRange struct{ lo, hi float64 }
	var candidates []clippedRange

	for _, b := range bands {
		if !b.HasDust {
			continue
		}
		lo := math.Max(b.InnerEdge, s.constants.InnermostPlanet)
		hi := math.Min(b.OuterEdge, s.constants.OutermostPlanet)
		if hi > lo {
			candidates = append(candidates, clippedRange{lo, hi})
		}
	}

	if len(candidates) == 0 {
		return 0, false
	}

	idx := int(s.rand.Uniform() * float64(len(candidates)))
	if idx >= len(candidates) {
		idx = len(candidates) - 1
	}
	chosen := candidates[idx]

	return chosen.lo + s.rand.Uniform()*(chosen.hi-chosen.lo), true
}

// Eccentricity draws 1 - U^Q, concentrated near 0 with a heavy tail toward
// 1.
func (s *InsertionStrategy) Eccentricity() float64 {
	u := s.rand.Uniform()
	return 1 - math.Pow(u, s.constants.EccentricityCoeff)
}
