package epi

import (
	"math"
	"testing"

	"github.com/epiforge/episim/internal/sim"
)

func TestNewSIR(t *testing.T) {
	m, err := NewSIR(DefaultParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Dim() != 2 {
		t.Errorf("expected dim 2, got %d", m.Dim())
	}

	if _, err := NewSIR(Params{R0: 0, Pop: 1e7, Gamma: 1}); err == nil {
		t.Error("expected error for invalid params")
	}
}

func TestSIRDerive(t *testing.T) {
	m, err := NewSIR(Params{R0: 2, Pop: 1e7, Gamma: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	x := sim.State{IdxInfected: 1e5, IdxSusceptible: 5e6}
	dx := m.Derive(x, 0)

	if len(dx) != 2 {
		t.Fatalf("expected 2 components, got %d", len(dx))
	}
	if math.Abs(dx[IdxSusceptible]+1e5) > 1e-6 {
		t.Errorf("expected susceptible derivative -1e5, got %g", dx[IdxSusceptible])
	}
	if math.Abs(dx[IdxInfected]) > 1e-6 {
		t.Errorf("expected infected derivative 0, got %g", dx[IdxInfected])
	}
}

func TestSIRRecovered(t *testing.T) {
	m, err := NewSIR(Params{R0: 2, Pop: 1e7, Gamma: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	x := sim.State{IdxInfected: 1e5, IdxSusceptible: 9e6}
	rec := m.Recovered(x)
	if math.Abs(rec-9e5) > 1e-6 {
		t.Errorf("expected 9e5 recovered, got %g", rec)
	}
}
