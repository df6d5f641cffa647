package integrators

import "github.com/epiforge/episim/internal/sim"

// Lagged is the staggered forward-Euler scheme used by the reference study
// for the (infected, susceptible) layout: the infected component advances on
// the derivative at the current state, while the susceptible component
// advances on its derivative evaluated with the infected count from one step
// earlier. The first step has no earlier value and uses the initial infected
// count, which makes it an ordinary synchronized Euler step.
//
// Components beyond the first two, if any, advance synchronously.
type Lagged struct {
	prevI   float64
	primed  bool
	scratch sim.State
}

func NewLagged() *Lagged {
	return &Lagged{}
}

// Reset clears the lag memory so the integrator can be reused for a new run.
func (l *Lagged) Reset() {
	l.primed = false
}

func (l *Lagged) Step(sys sim.System, x sim.State, t, dt float64) sim.State {
	if !l.primed {
		l.prevI = x[0]
		l.primed = true
	}
	if len(l.scratch) != len(x) {
		l.scratch = make(sim.State, len(x))
	}

	cur := sys.Derive(x, t)
	copy(l.scratch, x)
	l.scratch[0] = l.prevI
	lag := sys.Derive(l.scratch, t)

	next := make(sim.State, len(x))
	next[0] = x[0] + dt*cur[0]
	if len(x) > 1 {
		next[1] = x[1] + dt*lag[1]
	}
	for d := 2; d < len(x); d++ {
		next[d] = x[d] + dt*cur[d]
	}

	l.prevI = x[0]
	return next
}
