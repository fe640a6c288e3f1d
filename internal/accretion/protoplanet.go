package accretion

// ProtoPlanet is a forming body: axis and eccentricity are orbital
// elements, mass accumulates during sweeping. Derived geometry is computed
// on demand from a Calculator rather than cached on the struct, so the
// value can be copied freely and never goes stale.
type ProtoPlanet struct {
	Axis float64 // AU, > 0
	Ecc  float64 // 0 <= e < 1
	Mass float64 // solar masses
}

func (p ProtoPlanet) CriticalMass(c *Calculator) float64 {
	return c.CriticalMass(p.Axis, p.Ecc)
}

func (p ProtoPlanet) IsGasGiant(c *Calculator) bool {
	return p.Mass > p.CriticalMass(c)
}

func (p ProtoPlanet) SweepLimits(c *Calculator) (inner, outer float64) {
	return c.SweepLimits(p.Axis, p.Ecc, p.Mass)
}

func (p ProtoPlanet) GravLimits(c *Calculator) (inner, outer float64) {
	return c.GravLimits(p.Axis, p.Ecc, p.Mass)
}
