package metrics

import (
	"github.com/epiforge/episim/internal/epi"
	"github.com/epiforge/episim/internal/sim"
)

// Peak returns the maximum value in a trajectory and its index.
func Peak(xs []float64) (float64, int) {
	if len(xs) == 0 {
		return 0, -1
	}
	max, idx := xs[0], 0
	for k, v := range xs {
		if v > max {
			max, idx = v, k
		}
	}
	return max, idx
}

// Min returns the minimum value in a trajectory.
func Min(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	min := xs[0]
	for _, v := range xs {
		if v < min {
			min = v
		}
	}
	return min
}

// PeakInfected tracks the highest infected count seen during a run and the
// time at which it occurred.
type PeakInfected struct {
	peak   float64
	atTime float64
}

func NewPeakInfected() *PeakInfected { return &PeakInfected{} }

func (p *PeakInfected) Name() string { return "peak_infected" }

func (p *PeakInfected) Observe(x sim.State, t float64) {
	if i := x[epi.IdxInfected]; i > p.peak {
		p.peak = i
		p.atTime = t
	}
}

func (p *PeakInfected) Value() float64  { return p.peak }
func (p *PeakInfected) PeakAt() float64 { return p.atTime }

func (p *PeakInfected) Reset() {
	p.peak = 0
	p.atTime = 0
}
