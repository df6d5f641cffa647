package sim

import (
	"context"
	"fmt"
)

// Simulator integrates a system over a fixed horizon with a fixed step.
// Instances are not safe for concurrent use; each run resets metrics and
// integrator memory, so a Simulator may be reused sequentially.
type Simulator struct {
	sys           System
	integrator    Integrator
	metrics       []Metric
	observers     []Observer
	interventions []Intervention
}

func New(sys System, integrator Integrator) *Simulator {
	return &Simulator{sys: sys, integrator: integrator}
}

func (s *Simulator) AddMetric(m Metric)             { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer)         { s.observers = append(s.observers, o) }
func (s *Simulator) AddIntervention(i Intervention) { s.interventions = append(s.interventions, i) }

// Run integrates from x0 over cfg.Horizon in steps of cfg.Dt, recording
// floor(horizon/dt)+1 points including the initial condition. The output
// slices are allocated once, up front.
func (s *Simulator) Run(ctx context.Context, x0 State, cfg Config) (*Result, error) {
	if err := s.validate(x0, cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Horizon / cfg.Dt)
	dim := s.sys.Dim()

	result := &Result{
		Times:   make([]float64, 0, steps+1),
		Series:  make([][]float64, dim),
		Metrics: make(map[string]float64),
	}
	for d := range result.Series {
		result.Series[d] = make([]float64, 0, steps+1)
	}

	for _, m := range s.metrics {
		m.Reset()
	}
	if r, ok := s.integrator.(Resetter); ok {
		r.Reset()
	}

	x := x0.Clone()
	t := 0.0
	s.record(result, x, t)

	for n := 0; n < steps; n++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, iv := range s.interventions {
			x = iv.Apply(x, t)
		}

		x = s.integrator.Step(s.sys, x, t, cfg.Dt)
		t += cfg.Dt

		if cfg.ValidateState && !x.IsValid() {
			return result, &StepError{Step: n, Time: t, Wrapped: ErrInvalidState}
		}

		s.record(result, x, t)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) record(result *Result, x State, t float64) {
	result.Times = append(result.Times, t)
	for d := range result.Series {
		result.Series[d] = append(result.Series[d], x[d])
	}
	for _, m := range s.metrics {
		m.Observe(x, t)
	}
	for _, o := range s.observers {
		o.OnStep(x, t)
	}
}

func (s *Simulator) validate(x0 State, cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %g", ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Horizon <= 0 {
		return fmt.Errorf("%w: horizon must be positive, got %g", ErrInvalidConfig, cfg.Horizon)
	}
	if len(x0) != s.sys.Dim() {
		return fmt.Errorf("%w: got %d, system wants %d", ErrDimensionMismatch, len(x0), s.sys.Dim())
	}
	return nil
}
