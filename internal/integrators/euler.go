package integrators

import "github.com/epiforge/episim/internal/sim"

// Euler is the synchronized explicit Euler scheme: every component advances
// on the derivative at the current state.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys sim.System, x sim.State, t, dt float64) sim.State {
	dx := sys.Derive(x, t)
	next := make(sim.State, len(x))
	for d := range x {
		next[d] = x[d] + dt*dx[d]
	}
	return next
}
