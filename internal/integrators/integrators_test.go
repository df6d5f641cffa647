package integrators

import (
	"math"
	"testing"

	"github.com/epiforge/episim/internal/sim"
)

// oscillator is the harmonic oscillator d2x/dt2 = -x, written as a
// first-order pair. Exact solution from (1, 0): x = cos(t), v = -sin(t).
type oscillator struct{}

func (oscillator) Dim() int { return 2 }

func (oscillator) Derive(x sim.State, t float64) sim.State {
	return sim.State{x[1], -x[0]}
}

// bilinear couples the two components the way the epidemic system does:
// dI/dt = c*S*I - I, dS/dt = -c*S*I.
type bilinear struct {
	c float64
}

func (bilinear) Dim() int { return 2 }

func (b bilinear) Derive(x sim.State, t float64) sim.State {
	flow := b.c * x[0] * x[1]
	return sim.State{flow - x[0], -flow}
}

func integrate(integ sim.Integrator, sys sim.System, x sim.State, dt float64, steps int) sim.State {
	if r, ok := integ.(sim.Resetter); ok {
		r.Reset()
	}
	t := 0.0
	for n := 0; n < steps; n++ {
		x = integ.Step(sys, x, t, dt)
		t += dt
	}
	return x
}

func TestEulerAccuracy(t *testing.T) {
	x := integrate(NewEuler(), oscillator{}, sim.State{1, 0}, 1e-4, 10000)

	if math.Abs(x[0]-math.Cos(1)) > 1e-3 {
		t.Errorf("expected x near %g, got %g", math.Cos(1), x[0])
	}
	if math.Abs(x[1]+math.Sin(1)) > 1e-3 {
		t.Errorf("expected v near %g, got %g", -math.Sin(1), x[1])
	}
}

func TestRK4Accuracy(t *testing.T) {
	// RK4 at dt=0.01 should beat Euler at dt=1e-4 by a wide margin.
	x := integrate(NewRK4(), oscillator{}, sim.State{1, 0}, 0.01, 100)

	if math.Abs(x[0]-math.Cos(1)) > 1e-8 {
		t.Errorf("expected x near %g, got %g", math.Cos(1), x[0])
	}
	if math.Abs(x[1]+math.Sin(1)) > 1e-8 {
		t.Errorf("expected v near %g, got %g", -math.Sin(1), x[1])
	}
}

func TestLaggedFirstStepMatchesEuler(t *testing.T) {
	// With no earlier infected value the lag collapses and the first step
	// is an ordinary synchronized Euler step.
	sys := bilinear{c: 2e-3}
	x0 := sim.State{10, 900}

	lagged := NewLagged().Step(sys, x0.Clone(), 0, 0.1)
	euler := NewEuler().Step(sys, x0.Clone(), 0, 0.1)

	for d := range lagged {
		if lagged[d] != euler[d] {
			t.Errorf("component %d: lagged %g, euler %g", d, lagged[d], euler[d])
		}
	}
}

func TestLaggedSecondStepUsesEarlierInfected(t *testing.T) {
	sys := bilinear{c: 2e-3}
	dt := 0.1
	x0 := sim.State{10, 900}

	l := NewLagged()
	x1 := l.Step(sys, x0.Clone(), 0, dt)
	x2 := l.Step(sys, x1, dt, dt)

	// The infected component advances on the current state.
	wantI := x1[0] + dt*(sys.c*x1[0]*x1[1]-x1[0])
	if math.Abs(x2[0]-wantI) > 1e-12 {
		t.Errorf("infected: expected %g, got %g", wantI, x2[0])
	}

	// The susceptible component advances on the infected count from the
	// step before.
	wantS := x1[1] + dt*(-sys.c*x0[0]*x1[1])
	if math.Abs(x2[1]-wantS) > 1e-12 {
		t.Errorf("susceptible: expected %g, got %g", wantS, x2[1])
	}
}

func TestLaggedConvergesToEuler(t *testing.T) {
	// The lag is an O(dt) perturbation: at a small step the two schemes
	// should agree to within a small relative error.
	sys := bilinear{c: 2e-7}
	x0 := sim.State{20, 1e7}
	dt := 1e-4
	steps := 20000

	lagged := integrate(NewLagged(), sys, x0.Clone(), dt, steps)
	euler := integrate(NewEuler(), sys, x0.Clone(), dt, steps)

	for d := range lagged {
		rel := math.Abs(lagged[d]-euler[d]) / math.Max(math.Abs(euler[d]), 1)
		if rel > 1e-3 {
			t.Errorf("component %d: relative gap %g too large (lagged %g, euler %g)", d, rel, lagged[d], euler[d])
		}
	}
}

func TestLaggedReset(t *testing.T) {
	sys := bilinear{c: 2e-3}
	x0 := sim.State{10, 900}
	dt := 0.1

	l := NewLagged()
	a1 := l.Step(sys, x0.Clone(), 0, dt)
	a2 := l.Step(sys, a1, dt, dt)

	l.Reset()
	b1 := l.Step(sys, x0.Clone(), 0, dt)
	b2 := l.Step(sys, b1, dt, dt)

	for d := range a2 {
		if a2[d] != b2[d] {
			t.Errorf("component %d: expected identical runs after reset, got %g and %g", d, a2[d], b2[d])
		}
	}
}
