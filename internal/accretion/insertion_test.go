package accretion

import "testing"

func TestSemiMajorAxisEarlyPhaseWithinLegalRange(t *testing.T) {
	constants := DefaultDoleConstants()
	rand := NewLCG(42)
	strategy := NewInsertionStrategy(constants, rand)

	for i := 0; i < constants.RandomisedCount; i++ {
		axis, ok := strategy.SemiMajorAxis(i, nil)
		if !ok {
			t.Fatalf("expected early-phase draw to always succeed")
		}
		if axis < constants.InnermostPlanet || axis > constants.OutermostPlanet {
			t.Fatalf("axis %v out of legal range [%v, %v]", axis, constants.InnermostPlanet, constants.OutermostPlanet)
		}
	}
}

func TestSemiMajorAxisLatePhaseClipsToDustedBands(t *testing.T) {
	constants := DefaultDoleConstants()
	rand := NewLCG(7)
	strategy := NewInsertionStrategy(constants, rand)

	bands := []DustBand{
		{InnerEdge: 0, OuterEdge: 1, HasDust: false},
		{InnerEdge: 1, OuterEdge: 2, HasDust: true},
		{InnerEdge: 2, OuterEdge: constants.OutermostPlanet + 10, HasDust: false},
	}

	axis, ok := strategy.SemiMajorAxis(constants.RandomisedCount, bands)
	if !ok {
		t.Fatalf("expected a dusted band to be found")
	}
	if axis < 1 || axis > 2 {
		t.Fatalf("expected axis clipped to the one dusted band [1,2), got %v", axis)
	}
}

func TestSemiMajorAxisLatePhaseFailsWithNoDust(t *testing.T) {
	constants := DefaultDoleConstants()
	rand := NewLCG(7)
	strategy := NewInsertionStrategy(constants, rand)

	bands := []DustBand{{InnerEdge: 0, OuterEdge: constants.OutermostPlanet, HasDust: false}}

	_, ok := strategy.SemiMajorAxis(constants.RandomisedCount, bands)
	if ok {
		t.Fatalf("expected failure when no band carries dust")
	}
}

func TestEccentricityConcentratedNearZero(t *testing.T) {
	constants := DefaultDoleConstants()
	rand := NewLCG(1)
	strategy := NewInsertionStrategy(constants, rand)

	var sum float64
	const draws = 1000
	for i := 0; i < draws; i++ {
		e := strategy.Eccentricity()
		if e < 0 || e >= 1 {
			t.Fatalf("eccentricity %v out of [0,1)", e)
		}
		sum += e
	}

	mean := sum / draws
	if mean > 0.3 {
		t.Fatalf("expected eccentricity distribution concentrated near 0, got mean %v", mean)
	}
}
