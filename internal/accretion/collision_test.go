package accretion

import (
	"math"
	"testing"
)

func TestCoalesceAxisIsMassWeightedMean(t *testing.T) {
	got := CoalesceAxis(2, 1, 1, 4)
	want := (2*1 + 1*4) / 3.0
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestCoalesceEccentricityClampsNegativeArgument(t *testing.T) {
	// Two bodies on the same circular orbit give an angular-momentum ratio
	// of exactly 1 in theory; for these values rounding pushes its square
	// just above 1, so the result must clamp to 0 rather than produce NaN.
	got := CoalesceEccentricity(1, 0.7, 0, 2, 0.7, 0)
	if math.IsNaN(got) {
		t.Fatalf("eccentricity must not be NaN")
	}
	if got < 0 || got > 1 {
		t.Fatalf("eccentricity out of range: %v", got)
	}
}

func TestCoalesceEccentricityOfIdenticalOrbitsMatchesInput(t *testing.T) {
	// Two equal-mass bodies on the identical orbit coalesce to that same
	// orbit's eccentricity.
	got := CoalesceEccentricity(1, 5, 0.4, 1, 5, 0.4)
	if math.Abs(got-0.4) > 1e-9 {
		t.Fatalf("got %v want 0.4", got)
	}
}

func TestCoalesceMassIsSum(t *testing.T) {
	a := ProtoPlanet{Axis: 1, Ecc: 0.1, Mass: 2e-7}
	b := ProtoPlanet{Axis: 1.1, Ecc: 0.2, Mass: 3e-7}

	merged := Coalesce(a, b)
	if math.Abs(merged.Mass-5e-7) > 1e-20 {
		t.Fatalf("got mass %v want %v", merged.Mass, 5e-7)
	}
}

func TestTooCloseOverlappingNeighbors(t *testing.T) {
	star := StaticStar{MassRatio: 1, LuminosityRatio: 1}
	calc := NewCalculator(star, DefaultDoleConstants())

	p := ProtoPlanet{Axis: 1.0, Ecc: 0.1, Mass: 1e-5}
	q := ProtoPlanet{Axis: 1.01, Ecc: 0.1, Mass: 1e-5}

	if !tooClose(calc, p, q) {
		t.Fatalf("expected near-identical orbits to be judged too close")
	}
}

func TestTooCloseDistantNeighbors(t *testing.T) {
	star := StaticStar{MassRatio: 1, LuminosityRatio: 1}
	calc := NewCalculator(star, DefaultDoleConstants())

	p := ProtoPlanet{Axis: 1.0, Ecc: 0.01, Mass: 1e-10}
	q := ProtoPlanet{Axis: 40.0, Ecc: 0.01, Mass: 1e-10}

	if tooClose(calc, p, q) {
		t.Fatalf("expected widely separated orbits not to be judged too close")
	}
}
