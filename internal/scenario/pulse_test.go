package scenario

import (
	"testing"

	"github.com/epiforge/episim/internal/epi"
	"github.com/epiforge/episim/internal/sim"
)

func TestPulseFiresOnce(t *testing.T) {
	p := &Pulse{Amount: 10, At: 1.0}
	x := sim.State{epi.IdxInfected: 100, epi.IdxSusceptible: 900}

	// Before the trigger time nothing happens.
	y := p.Apply(x, 0.5)
	if y[epi.IdxInfected] != 100 {
		t.Errorf("expected no change before trigger, got %g", y[epi.IdxInfected])
	}

	y = p.Apply(x, 1.0)
	if y[epi.IdxInfected] != 110 || y[epi.IdxSusceptible] != 890 {
		t.Errorf("expected (110, 890), got (%g, %g)", y[epi.IdxInfected], y[epi.IdxSusceptible])
	}

	// A fired pulse is inert.
	z := p.Apply(y, 2.0)
	if z[epi.IdxInfected] != 110 {
		t.Errorf("expected no second firing, got %g", z[epi.IdxInfected])
	}
}

func TestPulsePreservesTotal(t *testing.T) {
	p := &Pulse{Amount: 7, At: 0}
	x := sim.State{epi.IdxInfected: 3, epi.IdxSusceptible: 97}

	y := p.Apply(x, 0)
	if got := y[epi.IdxInfected] + y[epi.IdxSusceptible]; got != 100 {
		t.Errorf("expected total 100, got %g", got)
	}
	if &y[0] == &x[0] {
		t.Error("expected a copied state, not an in-place mutation")
	}
}
