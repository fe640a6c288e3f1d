// Package ecosphere runs Fogg-style post-processing over a finished planet:
// habitable-zone geometry and a coarse habitability/atmosphere
// classification. It runs once per system, after the accretion engine and
// the stellar generator have both finished; nothing here feeds back into
// either.
package ecosphere

import "math"

// innerHabitableFactor and outerHabitableFactor bound the habitable zone as
// a fraction of the ecosphere radius, following Fogg's 1985 boundaries for
// the region where liquid water can persist on an Earth-like world.
const (
	innerHabitableFactor = 0.84
	outerHabitableFactor = 1.23

	// greenhouseFactor extends the outer edge of the zone in which a
	// planet's atmosphere can trigger a runaway greenhouse, beyond the
	// plain habitable boundary.
	greenhouseFactor = 1.4
)

// EcosphereRadius is the orbital distance (AU) at which a planet receives
// exactly the same insolation the Earth receives from the Sun.
func EcosphereRadius(luminositySolar float64) float64 {
	return math.Sqrt(luminositySolar)
}

// GreenhouseRadius is the outer distance (AU) within which a planet with an
// Earth-like atmosphere risks a runaway greenhouse.
func GreenhouseRadius(luminositySolar float64) float64 {
	return EcosphereRadius(luminositySolar) * greenhouseFactor
}

// InnerHabitableRadius and OuterHabitableRadius bound the zone (AU) in
// which liquid water can persist on an Earth-like world.
func InnerHabitableRadius(luminositySolar float64) float64 {
	return EcosphereRadius(luminositySolar) * innerHabitableFactor
}

func OuterHabitableRadius(luminositySolar float64) float64 {
	return EcosphereRadius(luminositySolar) * outerHabitableFactor
}
