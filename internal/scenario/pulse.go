package scenario

import (
	"github.com/epiforge/episim/internal/epi"
	"github.com/epiforge/episim/internal/sim"
)

// Pulse moves Amount people from the susceptible to the infected compartment
// once, at the first step boundary at or after At. A Pulse is single-use:
// construct a fresh one per run.
type Pulse struct {
	Amount float64
	At     float64
	fired  bool
}

func (p *Pulse) Apply(x sim.State, t float64) sim.State {
	if p.fired || t < p.At {
		return x
	}
	p.fired = true
	y := x.Clone()
	y[epi.IdxInfected] += p.Amount
	y[epi.IdxSusceptible] -= p.Amount
	return y
}
