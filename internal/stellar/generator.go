package stellar

import (
	"math"

	"stellarforge/internal/accretion"
)

// sunTemperatureK anchors the Stefan-Boltzmann radius estimate.
const sunTemperatureK = 5778.0

// Generator samples one Star per call, driven by a shared random source so
// star and planet sampling can be seeded together deterministically.
type Generator struct {
	rand accretion.RandomSource
}

func NewGenerator(rand accretion.RandomSource) *Generator {
	return &Generator{rand: rand}
}

// GenerateStar draws a spectral class from the real-galaxy frequency table,
// then a mass and temperature uniformly within that class's range, and
// derives luminosity, radius and main-sequence age from standard
// mass-luminosity and Stefan-Boltzmann relations.
func (g *Generator) GenerateStar() Star {
	entry := sampleClassRange(g.rand.Uniform())

	mass := entry.MassMin + g.rand.Uniform()*(entry.MassMax-entry.MassMin)
	temp := entry.TempMinK + g.rand.Uniform()*(entry.TempMaxK-entry.TempMinK)
	subclass := int(g.rand.Uniform() * 10)
	if subclass > 9 {
		subclass = 9
	}

	luminosity := massLuminosity(mass)
	radius := radiusFromTempLuminosity(temp, luminosity)
	age := g.rand.Uniform() * mainSequenceLifetimeGyr(mass, luminosity)

	return Star{
		Class:           entry.Class,
		Subclass:        subclass,
		MassSolar:       mass,
		LuminositySolar: luminosity,
		TemperatureK:    temp,
		RadiusSolar:     radius,
		AgeGyr:          age,
	}
}

// massLuminosity applies the standard piecewise mass-luminosity relation.
func massLuminosity(mass float64) float64 {
	switch {
	case mass < 0.43:
		return 0.23 * math.Pow(mass, 2.3)
	case mass < 2.0:
		return math.Pow(mass, 4.0)
	case mass < 20.0:
		return 1.4 * math.Pow(mass, 3.5)
	default:
		return 32000.0 * mass
	}
}

// radiusFromTempLuminosity inverts the Stefan-Boltzmann law: L = R^2 * (T/Tsun)^4.
func radiusFromTempLuminosity(tempK, luminosity float64) float64 {
	ratio := tempK / sunTemperatureK
	return math.Sqrt(luminosity) / (ratio * ratio)
}

// mainSequenceLifetimeGyr scales the Sun's ~10 Gyr main-sequence lifetime by
// the star's mass-to-luminosity ratio (fuel supply over burn rate).
func mainSequenceLifetimeGyr(mass, luminosity float64) float64 {
	return 10.0 * mass / luminosity
}
