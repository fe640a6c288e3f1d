package ecosphere

// Zone coarsely classifies a planet's orbit relative to its star's
// habitable band.
type Zone string

const (
	ZoneTooHot     Zone = "too_hot"
	ZoneHabitable  Zone = "habitable"
	ZoneGreenhouse Zone = "greenhouse_risk"
	ZoneTooCold    Zone = "too_cold"
)

// ClassifyZone places an orbit (AU) relative to the habitable band derived
// from the star's luminosity.
func ClassifyZone(axisAU, luminositySolar float64) Zone {
	inner := InnerHabitableRadius(luminositySolar)
	outer := OuterHabitableRadius(luminositySolar)
	greenhouse := GreenhouseRadius(luminositySolar)

	switch {
	case axisAU < inner:
		return ZoneTooHot
	case axisAU <= outer:
		return ZoneHabitable
	case axisAU <= greenhouse:
		return ZoneGreenhouse
	default:
		return ZoneTooCold
	}
}

// IsHabitable is a convenience predicate over ClassifyZone.
func IsHabitable(axisAU, luminositySolar float64) bool {
	return ClassifyZone(axisAU, luminositySolar) == ZoneHabitable
}
