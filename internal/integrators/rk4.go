package integrators

import "github.com/epiforge/episim/internal/sim"

// RK4 is the classical fourth-order Runge-Kutta scheme, useful as a
// high-accuracy baseline when judging the lagged Euler scheme.
type RK4 struct {
	k1, k2, k3, k4 sim.State
	scratch        sim.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(sim.State, n)
		r.k2 = make(sim.State, n)
		r.k3 = make(sim.State, n)
		r.k4 = make(sim.State, n)
		r.scratch = make(sim.State, n)
	}
}

func (r *RK4) Step(sys sim.System, x sim.State, t, dt float64) sim.State {
	n := len(x)
	r.ensureScratch(n)

	copy(r.k1, sys.Derive(x, t))

	for d := 0; d < n; d++ {
		r.scratch[d] = x[d] + dt*0.5*r.k1[d]
	}
	copy(r.k2, sys.Derive(r.scratch, t+dt*0.5))

	for d := 0; d < n; d++ {
		r.scratch[d] = x[d] + dt*0.5*r.k2[d]
	}
	copy(r.k3, sys.Derive(r.scratch, t+dt*0.5))

	for d := 0; d < n; d++ {
		r.scratch[d] = x[d] + dt*r.k3[d]
	}
	copy(r.k4, sys.Derive(r.scratch, t+dt))

	next := make(sim.State, n)
	dt6 := dt / 6.0
	for d := 0; d < n; d++ {
		next[d] = x[d] + dt6*(r.k1[d]+2*r.k2[d]+2*r.k3[d]+r.k4[d])
	}
	return next
}
