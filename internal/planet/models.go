package planet

import (
	"stellarforge/internal/ecosphere"
	"stellarforge/internal/uwp"
)

// Planet is the persisted, post-processed record of one surviving
// planetesimal: its accretion-engine orbital elements plus the
// ecosphere/UWP fields derived from them once a run finishes.
type Planet struct {
	ID            int            `json:"id"`
	SystemID      int            `json:"system_id"`
	PlanetIndex   int            `json:"planet_index"`
	AxisAU        float64        `json:"axis_au"`
	Eccentricity  float64        `json:"eccentricity"`
	MassEarth     float64        `json:"mass_earth"`
	RadiusEarth   float64        `json:"radius_earth"`
	IsGasGiant    bool           `json:"is_gas_giant"`
	HasAtmosphere bool           `json:"has_atmosphere"`
	Zone          ecosphere.Zone `json:"zone"`
	UWPCode       uwp.Code       `json:"uwp_code"`
}
