package accretion

import "math"

// Calculator is the planetesimal geometry/physics calculator: a pure
// function set over a star and a constants profile. Protoplanet derived
// quantities are computed on demand through it rather than cached on a
// back-reference, so a ProtoPlanet stays a plain value type.
type Calculator struct {
	Star      Star
	Constants Constants
}

func NewCalculator(star Star, constants Constants) *Calculator {
	return &Calculator{Star: star, Constants: constants}
}

// DustDensity is the baseline surface density at radius axis, monotonically
// decreasing: A * exp(-alpha * axis^(1/gamma)), with A scaled by the square
// root of the stellar mass.
func (c *Calculator) DustDensity(axis float64) float64 {
	a := c.Constants.DustDensityCoeff * math.Sqrt(c.Star.Mass())
	return a * math.Exp(-c.Constants.Alpha*math.Pow(axis, 1.0/c.Constants.Gamma))
}

// CriticalMass is the gas-capture threshold: it decreases with increasing
// perihelion luminosity.
func (c *Calculator) CriticalMass(axis, ecc float64) float64 {
	perihelion := axis * (1 - ecc)
	temp := perihelion * math.Sqrt(c.Star.Luminosity())
	return c.Constants.B * math.Pow(temp, -0.75)
}

// reducedMass is Dole's fourth-root reduced mass term, which keeps the
// sweep/grav limit formulas meaningfully sensitive even at the tiny
// (solar-mass-fraction) scale protoplanets live at.
func reducedMass(mass float64) float64 {
	return math.Pow(mass/(1.0+mass), 0.25)
}

// SweepLimits returns the radial annulus a protoplanet of the given axis,
// eccentricity and mass clears per orbit: wider for higher mass and higher
// eccentricity, clamped to 0 on the inner edge.
func (c *Calculator) SweepLimits(axis, ecc, mass float64) (inner, outer float64) {
	rm := reducedMass(mass)
	inner = axis * (1 - ecc) * (1 - rm) / (1 + c.Constants.CloudEccentricity)
	if inner < 0 {
		inner = 0
	}
	outer = axis * (1 + ecc) * (1 + rm) / (1 - c.Constants.CloudEccentricity)
	return inner, outer
}

// GravLimits returns the wider Hill-like overlap annulus used for collision
// tests: the sweep annulus expanded on both sides by a Hill-radius margin,
// so it always contains the sweep annulus.
func (c *Calculator) GravLimits(axis, ecc, mass float64) (inner, outer float64) {
	sweepInner, sweepOuter := c.SweepLimits(axis, ecc, mass)
	hill := axis * math.Cbrt(mass/(3*c.Star.Mass()))
	margin := hill * c.Constants.GravLimitFactor

	inner = sweepInner - margin
	if inner < 0 {
		inner = 0
	}
	outer = sweepOuter + margin
	return inner, outer
}

// BandVolume is the effective volume of the intersection of the sweep
// annulus [sweepInner, sweepOuter] with a dust band [bandInner, bandOuter],
// zero when they are disjoint.
func (c *Calculator) BandVolume(mass, axis, ecc, sweepInner, sweepOuter, bandInner, bandOuter float64) float64 {
	if bandOuter <= sweepInner || bandInner >= sweepOuter {
		return 0
	}

	bandwidth := sweepOuter - sweepInner
	if bandwidth <= 0 {
		return 0
	}

	trimOuter := sweepOuter - bandOuter
	if trimOuter < 0 {
		trimOuter = 0
	}
	trimInner := bandInner - sweepInner
	if trimInner < 0 {
		trimInner = 0
	}

	width := bandwidth - trimOuter - trimInner
	if width <= 0 {
		return 0
	}

	base := 4.0 * math.Pi * axis * axis * reducedMass(mass) * (1.0 - ecc*(trimOuter-trimInner)/bandwidth)
	if base < 0 {
		base = 0
	}
	return base * width / bandwidth
}

// DustAndGasDensity amplifies dustDensity with the gas-accretion factor K
// once the body has exceeded critical mass; below it, gas contributes
// nothing and the plain dust density applies.
func (c *Calculator) DustAndGasDensity(dustDensity, criticalMass, mass float64) float64 {
	if mass <= criticalMass {
		return dustDensity
	}
	return c.Constants.K * dustDensity / (1.0 + math.Sqrt(criticalMass/mass)*(c.Constants.K-1.0))
}

// OuterDustLimit is the initial disc outer edge, scaling with the cube root
// of the stellar mass.
func (c *Calculator) OuterDustLimit() float64 {
	return c.Constants.StellarDustLimitCoeff * math.Cbrt(c.Star.Mass())
}
