package metrics

import (
	"math"

	"github.com/epiforge/episim/internal/epi"
	"github.com/epiforge/episim/internal/sim"
)

// AttackRate estimates the fraction of the population ultimately infected,
// using the lowest susceptible count reached as a proxy for the final
// susceptible floor. Biased low when the horizon ends before burnout.
type AttackRate struct {
	pop  float64
	minS float64
}

func NewAttackRate(p epi.Params) *AttackRate {
	return &AttackRate{pop: p.Pop, minS: math.Inf(1)}
}

func (a *AttackRate) Name() string { return "attack_rate" }

func (a *AttackRate) Observe(x sim.State, t float64) {
	if s := x[epi.IdxSusceptible]; s < a.minS {
		a.minS = s
	}
}

func (a *AttackRate) Value() float64 {
	if math.IsInf(a.minS, 1) {
		return 0
	}
	return 1 - a.minS/a.pop
}

// MinSusceptible returns the lowest susceptible count seen.
func (a *AttackRate) MinSusceptible() float64 { return a.minS }

func (a *AttackRate) Reset() { a.minS = math.Inf(1) }
