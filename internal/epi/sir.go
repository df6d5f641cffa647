package epi

import "github.com/epiforge/episim/internal/sim"

// State vector layout for the two-compartment system.
const (
	IdxInfected    = 0
	IdxSusceptible = 1
)

// SIR is the two-compartment (I, S) system. The recovered compartment is
// implied: pop - infected - susceptible.
type SIR struct {
	P Params
}

func NewSIR(p Params) (*SIR, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &SIR{P: p}, nil
}

func (m *SIR) Dim() int { return 2 }

func (m *SIR) Derive(x sim.State, t float64) sim.State {
	i, s := x[IdxInfected], x[IdxSusceptible]
	return sim.State{m.P.DIdt(s, i), m.P.DSdt(s, i)}
}

// Recovered returns the implied recovered count for a state.
func (m *SIR) Recovered(x sim.State) float64 {
	return m.P.Pop - x[IdxInfected] - x[IdxSusceptible]
}
