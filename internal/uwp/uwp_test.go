package uwp

import (
	"testing"

	"stellarforge/internal/ecosphere"
)

func TestEncodeProducesFourCharacterCode(t *testing.T) {
	p := PlanetProfile{RadiusEarth: 1.0, MassEarth: 1.0, HasAtmo: true, Zone: ecosphere.ZoneHabitable}
	code := Encode(p)
	if len(code) != 4 {
		t.Fatalf("expected a 4-character UWP code, got %q (len %d)", code, len(code))
	}
}

func TestEncodeEarthLikeIsHighSizeHighAtmoHighHydro(t *testing.T) {
	p := PlanetProfile{RadiusEarth: 1.0, MassEarth: 1.0, HasAtmo: true, Zone: ecosphere.ZoneHabitable}
	code := Encode(p)

	if code[0] != '5' {
		t.Fatalf("expected size digit 5 for a 1.0 Earth-radius world, got %q", code)
	}
	if code[1] != '6' {
		t.Fatalf("expected atmosphere digit 6 for a 1.0 Earth-mass world, got %q", code)
	}
	if code[2] != '7' {
		t.Fatalf("expected hydrographics digit 7 in the habitable zone, got %q", code)
	}
	if code[3] != 'G' {
		t.Fatalf("expected zone digit G for habitable, got %q", code)
	}
}

func TestEncodeGasGiantIsMaxSize(t *testing.T) {
	p := PlanetProfile{RadiusEarth: 11.0, MassEarth: 300, IsGasGiant: true, HasAtmo: true, Zone: ecosphere.ZoneTooCold}
	code := Encode(p)

	if code[0] != byte(digitAlphabet[len(digitAlphabet)-1]) {
		t.Fatalf("expected a gas giant to get the top size digit, got %q", code)
	}
	if code[2] != '0' {
		t.Fatalf("expected gas giants to carry no surface hydrographics, got %q", code)
	}
}

func TestEncodeAirlessBodyHasZeroAtmosphereAndHydro(t *testing.T) {
	p := PlanetProfile{RadiusEarth: 0.2, MassEarth: 0.01, HasAtmo: false, Zone: ecosphere.ZoneTooCold}
	code := Encode(p)

	if code[1] != '0' {
		t.Fatalf("expected atmosphere digit 0 for an airless body, got %q", code)
	}
	if code[2] != '0' {
		t.Fatalf("expected hydrographics digit 0 for an airless body, got %q", code)
	}
}

func TestDigitClampsOutOfRange(t *testing.T) {
	if digit(-5) != digitAlphabet[0] {
		t.Fatalf("expected negative input to clamp to the first digit")
	}
	if digit(1000) != digitAlphabet[len(digitAlphabet)-1] {
		t.Fatalf("expected large input to clamp to the last digit")
	}
}
