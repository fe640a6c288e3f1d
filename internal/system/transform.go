package system

import (
	"math"

	"stellarforge/internal/accretion"
	"stellarforge/internal/ecosphere"
	"stellarforge/internal/planet"
	"stellarforge/internal/stellar"
	"stellarforge/internal/units"
	"stellarforge/internal/uwp"
)

// gasGiantRadiusEarth is the radius (Earth radii) estimateRadiusEarth
// assigns to any planet the accretion engine already classified as a gas
// giant, roughly Jupiter's radius and held constant across giant masses.
const gasGiantRadiusEarth = 11.0 // Jupiter radii in Earth radii, held roughly constant across giant planet masses

// estimateRadiusEarth derives a radius from mass alone, since the accretion
// engine tracks only orbital elements and mass. Terrestrial bodies follow
// the rough R ~ M^0.27 scaling observed for rocky planets; gas giants are
// treated as a near-constant radius, since electron degeneracy pressure
// flattens the mass-radius curve well before Jupiter's mass.
func estimateRadiusEarth(massEarth float64, isGasGiant bool) float64 {
	if isGasGiant {
		return gasGiantRadiusEarth
	}
	return math.Pow(massEarth, 0.27)
}

// BuildPlanets runs the ecosphere and UWP collaborators over every
// surviving planetesimal from one accretion run, in ascending axis order.
// constants must match whatever was passed to the accretion.Driver that
// produced result, since the gas-giant test depends on it. Exported for
// cmd/generate, which post-processes a run without touching Postgres.
func BuildPlanets(result *accretion.Result, star stellar.Star, constants accretion.Constants) []planet.Planet {
	calc := accretion.NewCalculator(star, constants)
	planets := make([]planet.Planet, len(result.Planets))

	for i, p := range result.Planets {
		massEarth := units.SolarMassesToEarthMasses(p.Mass)
		isGasGiant := p.IsGasGiant(calc)
		radiusEarth := estimateRadiusEarth(massEarth, isGasGiant)
		zone := ecosphere.ClassifyZone(p.Axis, star.LuminositySolar)
		hasAtmo := ecosphere.HasAtmosphere(massEarth, isGasGiant, zone)

		code := uwp.Encode(uwp.PlanetProfile{
			RadiusEarth: radiusEarth,
			MassEarth:   massEarth,
			IsGasGiant:  isGasGiant,
			HasAtmo:     hasAtmo,
			Zone:        zone,
		})

		planets[i] = planet.Planet{
			PlanetIndex:   i,
			AxisAU:        p.Axis,
			Eccentricity:  p.Ecc,
			MassEarth:     massEarth,
			RadiusEarth:   radiusEarth,
			IsGasGiant:    isGasGiant,
			HasAtmosphere: hasAtmo,
			Zone:          zone,
			UWPCode:       code,
		}
	}

	return planets
}
