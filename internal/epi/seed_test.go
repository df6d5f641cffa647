package epi

import (
	"errors"
	"math"
	"testing"
)

func TestImpliedRecovered(t *testing.T) {
	// alpha = 1/2: recovered = i/(1-0.5) - i = i
	rec, err := ImpliedRecovered(10, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(rec-10) > 1e-12 {
		t.Errorf("expected 10, got %g", rec)
	}

	// alpha = 1/3.5: recovered = i*alpha/(1-alpha) = 10/2.5 = 4
	rec, err = ImpliedRecovered(10, 1/3.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(rec-4) > 1e-12 {
		t.Errorf("expected 4, got %g", rec)
	}
}

func TestImpliedRecoveredZeroInfected(t *testing.T) {
	rec, err := ImpliedRecovered(0, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec != 0 {
		t.Errorf("expected 0, got %g", rec)
	}
}

func TestImpliedRecoveredSubcritical(t *testing.T) {
	for _, alpha := range []float64{1.0, 1.5} {
		if _, err := ImpliedRecovered(10, alpha); !errors.Is(err, ErrSubcritical) {
			t.Errorf("alpha=%g: expected ErrSubcritical, got %v", alpha, err)
		}
	}
}

func TestSeeding(t *testing.T) {
	p := Params{R0: 2, Pop: 1e7, Gamma: 1}

	// rate 1e-6 gives 10 background infections, whose implied recovered
	// pool at alpha=0.5 is another 10. The injection is not part of the
	// recovered estimate.
	i0, s0, err := Seeding(p, 1e-6, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(i0-20) > 1e-9 {
		t.Errorf("expected i0 20, got %g", i0)
	}
	if math.Abs(s0-(1e7-30)) > 1e-6 {
		t.Errorf("expected s0 %g, got %g", 1e7-30.0, s0)
	}
}

func TestSeedingNoInjection(t *testing.T) {
	p := Params{R0: 2, Pop: 1e7, Gamma: 1}

	i0, s0, err := Seeding(p, 1e-6, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(i0-10) > 1e-9 {
		t.Errorf("expected i0 10, got %g", i0)
	}
	if math.Abs(s0-(1e7-20)) > 1e-6 {
		t.Errorf("expected s0 %g, got %g", 1e7-20.0, s0)
	}
}

func TestSeedingInjectionShiftsBothPools(t *testing.T) {
	// Injected infections come out of the susceptible pool one for one,
	// so i0+s0 is independent of the injection size.
	p := Params{R0: 2, Pop: 1e7, Gamma: 1}

	i0a, s0a, err := Seeding(p, 1e-6, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i0b, s0b, err := Seeding(p, 1e-6, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs((i0a+s0a)-(i0b+s0b)) > 1e-6 {
		t.Errorf("expected equal totals, got %g and %g", i0a+s0a, i0b+s0b)
	}
}

func TestSeedingBadRate(t *testing.T) {
	p := DefaultParams()
	for _, rate := range []float64{-0.1, 1.0, 1.5} {
		if _, _, err := Seeding(p, rate, 0); !errors.Is(err, ErrParameterBounds) {
			t.Errorf("rate=%g: expected ErrParameterBounds, got %v", rate, err)
		}
	}
}

func TestSeedingSubcriticalParams(t *testing.T) {
	p := Params{R0: 0.9, Pop: 1e7, Gamma: 1}
	if _, _, err := Seeding(p, 1e-6, 0); !errors.Is(err, ErrSubcritical) {
		t.Errorf("expected ErrSubcritical, got %v", err)
	}
}
