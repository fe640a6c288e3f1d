// Package uwp maps a finished planet onto a short Traveller-style Universe
// World Profile code: table lookups over the planet's already-computed
// size, atmosphere and zone. Purely a display convenience; nothing in
// internal/accretion, internal/stellar or internal/ecosphere reads it back.
package uwp

import "stellarforge/internal/ecosphere"

// digitAlphabet mirrors classic Traveller UWP digits: 0-9 then letters,
// skipping I and O so a code is never confused with the digits 1 and 0.
const digitAlphabet = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"

func digit(n int) byte {
	if n < 0 {
		n = 0
	}
	if n >= len(digitAlphabet) {
		n = len(digitAlphabet) - 1
	}
	return digitAlphabet[n]
}

// PlanetProfile is the narrow view of a finished planet the UWP encoder
// needs.
type PlanetProfile struct {
	RadiusEarth float64
	MassEarth   float64
	IsGasGiant  bool
	HasAtmo     bool
	Zone        ecosphere.Zone
}

// Code is a 4-character UWP: Size, Atmosphere, Hydrographics, Zone.
type Code string

// Encode produces a planet's UWP code.
func Encode(p PlanetProfile) Code {
	return Code([]byte{
		sizeDigit(p),
		atmosphereDigit(p),
		hydrographicsDigit(p),
		zoneDigit(p.Zone),
	})
}

// sizeDigit buckets radius (Earth radii) into Traveller's 0 (asteroid) to
// 9-and-up (giant) scale. Gas giants sit above the terrestrial scale
// entirely and are marked with the top digit.
func sizeDigit(p PlanetProfile) byte {
	if p.IsGasGiant {
		return digit(len(digitAlphabet) - 1)
	}
	switch {
	case p.RadiusEarth < 0.1:
		return digit(0)
	case p.RadiusEarth < 0.3:
		return digit(1)
	case p.RadiusEarth < 0.5:
		return digit(2)
	case p.RadiusEarth < 0.7:
		return digit(3)
	case p.RadiusEarth < 0.9:
		return digit(4)
	case p.RadiusEarth < 1.1:
		return digit(5)
	case p.RadiusEarth < 1.3:
		return digit(6)
	case p.RadiusEarth < 1.6:
		return digit(7)
	case p.RadiusEarth < 2.0:
		return digit(8)
	default:
		return digit(9)
	}
}

// atmosphereDigit is 0 for no atmosphere, otherwise scales with mass as a
// stand-in for atmospheric density since composition isn't modeled.
func atmosphereDigit(p PlanetProfile) byte {
	if !p.HasAtmo {
		return digit(0)
	}
	if p.IsGasGiant {
		return digit(15) // "F": dense, exotic gas-giant envelope
	}
	switch {
	case p.MassEarth < 0.3:
		return digit(2)
	case p.MassEarth < 0.8:
		return digit(4)
	case p.MassEarth < 1.5:
		return digit(6)
	case p.MassEarth < 3.0:
		return digit(8)
	default:
		return digit(9)
	}
}

// hydrographicsDigit approximates surface water coverage from zone alone,
// since composition and volatile inventory aren't modeled.
func hydrographicsDigit(p PlanetProfile) byte {
	if !p.HasAtmo || p.IsGasGiant {
		return digit(0)
	}
	switch p.Zone {
	case ecosphere.ZoneHabitable:
		return digit(7)
	case ecosphere.ZoneGreenhouse:
		return digit(3)
	default:
		return digit(0)
	}
}

func zoneDigit(z ecosphere.Zone) byte {
	switch z {
	case ecosphere.ZoneTooHot:
		return 'H'
	case ecosphere.ZoneHabitable:
		return 'G'
	case ecosphere.ZoneGreenhouse:
		return 'R'
	default:
		return 'C'
	}
}
