package units

import (
	"math"
	"testing"
)

func TestSolarMassRoundTrip(t *testing.T) {
	got := EarthMassesToSolarMasses(SolarMassesToEarthMasses(1.0))
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("round trip did not preserve mass: got %v", got)
	}
}

func TestAUToKilometersSunEarthDistance(t *testing.T) {
	got := AUToKilometers(1.0)
	if math.Abs(got-149_597_870.7) > 1e-6 {
		t.Fatalf("got %v want ~149,597,870.7 km", got)
	}
}

func TestSolarRadiiToKilometersSun(t *testing.T) {
	got := SolarRadiiToKilometers(1.0)
	if math.Abs(got-695_700.0) > 1e-6 {
		t.Fatalf("got %v want 695,700 km", got)
	}
}
