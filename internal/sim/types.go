package sim

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// System describes an ODE system dX/dt = f(X, t).
type System interface {
	Derive(x State, t float64) State
	Dim() int
}

// Integrator advances a state by one fixed step. Integrators that carry
// per-run memory also implement Resetter.
type Integrator interface {
	Step(sys System, x State, t, dt float64) State
}

// Resetter clears integrator memory between runs.
type Resetter interface {
	Reset()
}

// Intervention mutates the state at step boundaries, e.g. injecting
// infections at a chosen time. Apply must return a state of the same
// dimension.
type Intervention interface {
	Apply(x State, t float64) State
}

type Metric interface {
	Name() string
	Observe(x State, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(x State, t float64)
}

type Config struct {
	Dt            float64
	Horizon       float64
	ValidateState bool
}

// Result holds one run's trajectories in component-major order: Series[d][k]
// is component d at step k. The slices are pre-sized at run start and never
// grown.
type Result struct {
	Times   []float64
	Series  [][]float64
	Metrics map[string]float64
}

// Component returns the trajectory of one state component.
func (r *Result) Component(d int) []float64 { return r.Series[d] }

// Steps returns the number of recorded points.
func (r *Result) Steps() int { return len(r.Times) }
