package epi

import "fmt"

// ImpliedRecovered estimates the cumulative recovered population at the
// moment the simulation is seeded, assuming past infections formed a
// geometric series with ratio alpha = 1/R0:
//
//	recovered = i/(1-alpha) - i
//
// The estimate diverges as alpha approaches 1 from below, so the model must
// be supercritical (R0 > 1).
func ImpliedRecovered(i, alpha float64) (float64, error) {
	if alpha >= 1 {
		return 0, fmt.Errorf("%w (alpha=%g)", ErrSubcritical, alpha)
	}
	return i/(1-alpha) - i, nil
}

// Seeding derives consistent initial compartment counts for a run that
// starts with a background infected fraction `rate` of the population, plus
// `extra` injected infections moved from the susceptible pool. The recovered
// pool implied by the background infections is subtracted from the
// susceptible count so that the three compartments sum to the population.
func Seeding(p Params, rate, extra float64) (i0, s0 float64, err error) {
	if err := p.Validate(); err != nil {
		return 0, 0, err
	}
	if rate < 0 || rate >= 1 {
		return 0, 0, fmt.Errorf("%w: background rate must be in [0,1), got %g", ErrParameterBounds, rate)
	}
	base := p.Pop * rate
	rec, err := ImpliedRecovered(base, 1/p.R0)
	if err != nil {
		return 0, 0, err
	}
	i0 = base + extra
	s0 = p.Pop - base - extra - rec
	return i0, s0, nil
}
