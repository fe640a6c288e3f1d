package system

import (
	"time"

	"stellarforge/internal/stellar"
)

// System is the persisted record of one generation run: the seed that
// reproduces it and the sampled primary star. Its planets live in
// internal/planet, scoped by SystemID; its run statistics live in
// internal/stats.
type System struct {
	ID                  int                   `json:"id"`
	Seed                uint64                `json:"seed"`
	StarClass           stellar.SpectralClass `json:"star_class"`
	StarSubclass        int                   `json:"star_subclass"`
	StarMassSolar       float64               `json:"star_mass_solar"`
	StarLuminositySolar float64               `json:"star_luminosity_solar"`
	StarTemperatureK    float64               `json:"star_temperature_k"`
	StarRadiusSolar     float64               `json:"star_radius_solar"`
	StarAgeGyr          float64               `json:"star_age_gyr"`
	PlanetCount         int                   `json:"planet_count"`
	CreatedAt           time.Time             `json:"created_at"`
}
