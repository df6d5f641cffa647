package scenario

import (
	"context"
	"fmt"

	"github.com/epiforge/episim/internal/epi"
	"github.com/epiforge/episim/internal/integrators"
	"github.com/epiforge/episim/internal/metrics"
	"github.com/epiforge/episim/internal/sim"
)

// Scenario fully describes one baseline-vs-perturbed experiment. Every
// parameter is explicit; two scenarios with equal fields produce
// bit-identical results.
type Scenario struct {
	Params   epi.Params
	Rate     float64 // background infected fraction at seeding
	Delta    float64 // extra infections moved from susceptible to infected
	InjectAt float64 // if > 0, inject Delta at this time instead of at seeding
	Dt       float64
	Horizon  float64
	Capacity metrics.Capacity
}

func (sc Scenario) Validate() error {
	if err := sc.Params.Validate(); err != nil {
		return err
	}
	if sc.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %g", sim.ErrInvalidConfig, sc.Dt)
	}
	if sc.Horizon <= 0 {
		return fmt.Errorf("%w: horizon must be positive, got %g", sim.ErrInvalidConfig, sc.Horizon)
	}
	if sc.Rate < 0 || sc.Rate >= 1 {
		return fmt.Errorf("%w: background rate must be in [0,1), got %g", epi.ErrParameterBounds, sc.Rate)
	}
	return nil
}

// Trajectory is one run's output: pre-sized, same-length infected and
// susceptible sequences plus the metrics observed during the run.
type Trajectory struct {
	Times       []float64
	Infected    []float64
	Susceptible []float64
	Metrics     map[string]float64
}

// Stress returns the run's integrated excess over hospital capacity.
func (tr *Trajectory) Stress(sc Scenario) float64 {
	return metrics.ExcessOverCapacity(tr.Infected, sc.Dt, sc.Params.Pop, sc.Capacity)
}

// Baseline runs the scenario without the injection.
func Baseline(ctx context.Context, sc Scenario) (*Trajectory, error) {
	return run(ctx, sc, 0, nil, integrators.NewLagged())
}

// Perturbed runs the scenario with Delta extra infections, injected at
// seeding or, when InjectAt is set, mid-run via a pulse intervention.
func Perturbed(ctx context.Context, sc Scenario) (*Trajectory, error) {
	if sc.InjectAt > 0 {
		pulse := &Pulse{Amount: sc.Delta, At: sc.InjectAt}
		return run(ctx, sc, 0, pulse, integrators.NewLagged())
	}
	return run(ctx, sc, sc.Delta, nil, integrators.NewLagged())
}

// RunWith runs the baseline under an alternative integration scheme, for
// side-by-side comparison against the lagged reference scheme.
func RunWith(ctx context.Context, sc Scenario, integ sim.Integrator) (*Trajectory, error) {
	return run(ctx, sc, 0, nil, integ)
}

func run(ctx context.Context, sc Scenario, extra float64, pulse *Pulse, integ sim.Integrator) (*Trajectory, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	sys, err := epi.NewSIR(sc.Params)
	if err != nil {
		return nil, err
	}
	i0, s0, err := epi.Seeding(sc.Params, sc.Rate, extra)
	if err != nil {
		return nil, err
	}

	s := sim.New(sys, integ)
	peak := metrics.NewPeakInfected()
	attack := metrics.NewAttackRate(sc.Params)
	stress := metrics.NewHospitalStress(sc.Params, sc.Capacity, sc.Dt)
	s.AddMetric(peak)
	s.AddMetric(attack)
	s.AddMetric(stress)
	if pulse != nil {
		s.AddIntervention(pulse)
	}

	x0 := sim.State{epi.IdxInfected: i0, epi.IdxSusceptible: s0}
	res, err := s.Run(ctx, x0, sim.Config{Dt: sc.Dt, Horizon: sc.Horizon})
	if err != nil {
		return nil, err
	}

	return &Trajectory{
		Times:       res.Times,
		Infected:    res.Component(epi.IdxInfected),
		Susceptible: res.Component(epi.IdxSusceptible),
		Metrics:     res.Metrics,
	}, nil
}

// Deltas are the two comparative metrics, perturbed relative to baseline.
type Deltas struct {
	// HospitalStress is the additional integrated excess over hospital
	// capacity caused by the injection. Positive means the injection
	// increased total capacity exceedance.
	HospitalStress float64

	// TotalInfections is the additional number of people ultimately
	// infected, taken as the difference of the susceptible floors.
	TotalInfections float64
}

// Compare runs the baseline and perturbed scenarios and reduces the two
// trajectories to the comparative metrics.
func Compare(ctx context.Context, sc Scenario) (*Deltas, error) {
	base, err := Baseline(ctx, sc)
	if err != nil {
		return nil, err
	}
	pert, err := Perturbed(ctx, sc)
	if err != nil {
		return nil, err
	}
	return &Deltas{
		HospitalStress:  pert.Stress(sc) - base.Stress(sc),
		TotalInfections: metrics.Min(base.Susceptible) - metrics.Min(pert.Susceptible),
	}, nil
}
