package accretion

import "fmt"

// Constants bundles the accretion profile: the physical constants and
// strategy knobs that parameterize one simulation run. Treated as an
// explicit configuration object passed into the driver and calculator,
// never as global state.
type Constants struct {
	// InnermostPlanet and OutermostPlanet bound the legal orbital range
	// (AU) that insertion sampling and the dust-availability guard use.
	InnermostPlanet float64
	OutermostPlanet float64

	// ProtoplanetMass is the seed mass (solar masses) every freshly
	// injected nucleus starts at.
	ProtoplanetMass float64

	// EccentricityCoeff (Q) shapes the eccentricity draw 1 - U^Q.
	EccentricityCoeff float64

	// DustDensityCoeff (A), Alpha and Gamma parameterize the baseline
	// dust density curve A * exp(-alpha * axis^(1/gamma)).
	DustDensityCoeff float64
	Alpha            float64
	Gamma            float64

	// B scales the critical (gas-capture) mass threshold.
	B float64

	// K is the gas-accretion amplification factor applied once a body
	// becomes gas-giant class.
	K float64

	// CloudEccentricity widens the sweep annulus independently of the
	// protoplanet's own eccentricity.
	CloudEccentricity float64

	// StellarDustLimitCoeff scales the disc's initial outer edge with
	// the cube root of the stellar mass.
	StellarDustLimitCoeff float64

	// GravLimitFactor scales the Hill-radius margin added on top of the
	// sweep annulus to produce the wider gravitational overlap bracket
	// used by the too_close collision test.
	GravLimitFactor float64

	// RandomisedCount is the number of early injections sampled
	// uniformly across the whole legal range before insertion switches
	// to sampling from dusted bands only.
	RandomisedCount int

	// MassConvergence is the relative mass-growth threshold below which
	// a sweep phase is considered converged.
	MassConvergence float64

	// MaxInjections bounds the number of injections per run as a
	// non-terminating-loop safety net; exceeding it aborts the run with
	// a warning rather than looping forever.
	MaxInjections int
}

// DefaultDoleConstants returns the classic Dole/Fogg parameterization used
// throughout the literature and by the reference seeds in spec.md.
func DefaultDoleConstants() Constants {
	return Constants{
		InnermostPlanet:       0.3,
		OutermostPlanet:       50.0,
		ProtoplanetMass:       1.0e-15,
		EccentricityCoeff:     0.077,
		DustDensityCoeff:      2.0e-3,
		Alpha:                 5.0,
		Gamma:                 3.0,
		B:                     1.2e-5,
		K:                     50.0,
		CloudEccentricity:     0.2,
		StellarDustLimitCoeff: 200.0,
		GravLimitFactor:       1.0,
		RandomisedCount:       20,
		MassConvergence:       1e-4,
		MaxInjections:         10000,
	}
}

// Validate rejects programmer-error configurations at construction, per
// spec.md's "Configuration errors fail fast" rule.
func (c Constants) Validate() error {
	switch {
	case c.InnermostPlanet <= 0:
		return fmt.Errorf("innermost_planet must be positive, got %v", c.InnermostPlanet)
	case c.OutermostPlanet <= c.InnermostPlanet:
		return fmt.Errorf("outermost_planet (%v) must exceed innermost_planet (%v)", c.OutermostPlanet, c.InnermostPlanet)
	case c.ProtoplanetMass <= 0:
		return fmt.Errorf("protoplanet_mass must be positive, got %v", c.ProtoplanetMass)
	case c.EccentricityCoeff <= 0:
		return fmt.Errorf("eccentricity_coeff must be positive, got %v", c.EccentricityCoeff)
	case c.DustDensityCoeff <= 0:
		return fmt.Errorf("dust_density_coeff must be positive, got %v", c.DustDensityCoeff)
	case c.Alpha <= 0:
		return fmt.Errorf("alpha must be positive, got %v", c.Alpha)
	case c.Gamma <= 0:
		return fmt.Errorf("gamma must be positive, got %v", c.Gamma)
	case c.B <= 0:
		return fmt.Errorf("b must be positive, got %v", c.B)
	case c.K <= 1:
		return fmt.Errorf("k must exceed 1, got %v", c.K)
	case c.CloudEccentricity < 0 || c.CloudEccentricity >= 1:
		return fmt.Errorf("cloud_eccentricity must be in [0,1), got %v", c.CloudEccentricity)
	case c.StellarDustLimitCoeff <= 0:
		return fmt.Errorf("stellar_dust_limit_coeff must be positive, got %v", c.StellarDustLimitCoeff)
	case c.GravLimitFactor < 0:
		return fmt.Errorf("grav_limit_factor must be non-negative, got %v", c.GravLimitFactor)
	case c.RandomisedCount < 0:
		return fmt.Errorf("randomised_count must be non-negative, got %v", c.RandomisedCount)
	case c.MassConvergence <= 0:
		return fmt.Errorf("mass_convergence must be positive, got %v", c.MassConvergence)
	case c.MaxInjections <= 0:
		return fmt.Errorf("max_injections must be positive, got %v", c.MaxInjections)
	}
	return nil
}
