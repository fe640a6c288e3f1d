package ecosphere

import (
	"math"
	"testing"
)

func TestEcosphereRadiusOfSunIsOneAU(t *testing.T) {
	got := EcosphereRadius(1.0)
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("got %v want 1.0 AU", got)
	}
}

func TestHabitableBandOrdering(t *testing.T) {
	luminosity := 1.0
	inner := InnerHabitableRadius(luminosity)
	outer := OuterHabitableRadius(luminosity)
	greenhouse := GreenhouseRadius(luminosity)
	eco := EcosphereRadius(luminosity)

	if !(inner < eco && eco < outer && outer < greenhouse) {
		t.Fatalf("expected inner < ecosphere < outer < greenhouse, got %v < %v < %v < %v", inner, eco, outer, greenhouse)
	}
}

func TestClassifyZoneAcrossOrbit(t *testing.T) {
	luminosity := 1.0

	cases := []struct {
		axis float64
		want Zone
	}{
		{0.3, ZoneTooHot},
		{1.0, ZoneHabitable},
		{1.3, ZoneGreenhouse},
		{5.0, ZoneTooCold},
	}

	for _, c := range cases {
		if got := ClassifyZone(c.axis, luminosity); got != c.want {
			t.Fatalf("axis %v: got %v want %v", c.axis, got, c.want)
		}
	}
}

func TestIsHabitableMatchesClassifyZone(t *testing.T) {
	if !IsHabitable(1.0, 1.0) {
		t.Fatalf("expected 1 AU around a sun-like star to be habitable")
	}
	if IsHabitable(10.0, 1.0) {
		t.Fatalf("expected 10 AU around a sun-like star not to be habitable")
	}
}

func TestHasAtmosphereGasGiantsAlwaysRetain(t *testing.T) {
	if !HasAtmosphere(0.001, true, ZoneTooHot) {
		t.Fatalf("expected gas giants to always retain an atmosphere")
	}
}

func TestHasAtmosphereSmallBodyLosesIt(t *testing.T) {
	if HasAtmosphere(0.01, false, ZoneHabitable) {
		t.Fatalf("expected a small terrestrial body to lose its atmosphere")
	}
}

func TestHasAtmosphereHotMassiveBodyLosesIt(t *testing.T) {
	if HasAtmosphere(1.0, false, ZoneTooHot) {
		t.Fatalf("expected a close-in body to be stripped by stellar wind")
	}
}

func TestHasAtmosphereEarthLikeRetainsIt(t *testing.T) {
	if !HasAtmosphere(1.0, false, ZoneHabitable) {
		t.Fatalf("expected an Earth-mass body in the habitable zone to retain its atmosphere")
	}
}
