// Package stellar samples a primary star's spectral class, mass,
// luminosity, temperature, radius and age from a seeded draw. It is an
// external collaborator of the accretion engine: the engine only ever
// depends on the narrow accretion.Star interface, never on this package.
package stellar

import "stellarforge/internal/accretion"

// SpectralClass is one of the seven main-sequence classes, ordered hottest
// to coolest.
type SpectralClass string

const (
	ClassO SpectralClass = "O"
	ClassB SpectralClass = "B"
	ClassA SpectralClass = "A"
	ClassF SpectralClass = "F"
	ClassG SpectralClass = "G"
	ClassK SpectralClass = "K"
	ClassM SpectralClass = "M"
)

// Star is a fully-sampled primary star. MassSolar and LuminositySolar back
// the accretion.Star interface; the rest is descriptive, consumed by
// internal/ecosphere and the JSON-facing models.
type Star struct {
	Class           SpectralClass
	Subclass        int // 0 through 9 within Class, drawn independently of TemperatureK
	MassSolar       float64
	LuminositySolar float64
	TemperatureK    float64
	RadiusSolar     float64
	AgeGyr          float64
}

func (s Star) Mass() float64       { return s.MassSolar }
func (s Star) Luminosity() float64 { return s.LuminositySolar }

var _ accretion.Star = Star{}
