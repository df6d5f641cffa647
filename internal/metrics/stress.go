package metrics

import (
	"github.com/epiforge/episim/internal/epi"
	"github.com/epiforge/episim/internal/sim"
)

// Capacity describes hospital stress parameters: Severe is the fraction of
// current infections requiring severe care, Threshold the hospital capacity
// as a fraction of the population.
type Capacity struct {
	Severe    float64
	Threshold float64
}

// ExcessOverCapacity computes the Riemann-sum integral of infections above
// hospital capacity: over the points where the severe-case load meets or
// exceeds capacity (i*severe >= pop*threshold), it sums (i - pop*threshold)
// scaled by the step size. Zero when the threshold is never crossed.
func ExcessOverCapacity(infected []float64, dt, pop float64, c Capacity) float64 {
	cap := pop * c.Threshold
	excess := 0.0
	for _, i := range infected {
		if i*c.Severe >= cap {
			excess += (i - cap) * dt
		}
	}
	return excess
}

// HospitalStress accumulates ExcessOverCapacity during a run.
type HospitalStress struct {
	params epi.Params
	cap    Capacity
	dt     float64
	sum    float64
}

func NewHospitalStress(p epi.Params, c Capacity, dt float64) *HospitalStress {
	return &HospitalStress{params: p, cap: c, dt: dt}
}

func (h *HospitalStress) Name() string { return "hospital_stress" }

func (h *HospitalStress) Observe(x sim.State, t float64) {
	i := x[epi.IdxInfected]
	threshold := h.params.Pop * h.cap.Threshold
	if i*h.cap.Severe >= threshold {
		h.sum += (i - threshold) * h.dt
	}
}

func (h *HospitalStress) Value() float64 { return h.sum }
func (h *HospitalStress) Reset()         { h.sum = 0 }
