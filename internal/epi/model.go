package epi

import "fmt"

// Params holds the compartmental model parameters. The recovery rate sets
// the time unit: with Gamma = 1, one time unit is one infectious period.
type Params struct {
	R0    float64 // basic reproduction number
	Pop   float64 // total population size
	Gamma float64 // recovery rate
}

func DefaultParams() Params {
	return Params{R0: 3.5, Pop: 1e7, Gamma: 1.0}
}

func (p Params) Validate() error {
	if p.Pop <= 0 {
		return fmt.Errorf("%w: population must be positive, got %g", ErrParameterBounds, p.Pop)
	}
	if p.R0 <= 0 {
		return fmt.Errorf("%w: reproduction number must be positive, got %g", ErrParameterBounds, p.R0)
	}
	if p.Gamma <= 0 {
		return fmt.Errorf("%w: recovery rate must be positive, got %g", ErrParameterBounds, p.Gamma)
	}
	return nil
}

// DSdt returns the instantaneous rate of change of the susceptible
// compartment for the current susceptible and infected counts.
func (p Params) DSdt(s, i float64) float64 {
	return -s * i * p.R0 * p.Gamma / p.Pop
}

// DIdt returns the rate of change of the infected compartment: the inflow
// from the susceptible compartment minus the recovery outflow.
func (p Params) DIdt(s, i float64) float64 {
	return -p.DSdt(s, i) - p.Gamma*i
}
