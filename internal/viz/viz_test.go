package viz

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/epiforge/episim/internal/epi"
	"github.com/epiforge/episim/internal/metrics"
	"github.com/epiforge/episim/internal/scenario"
)

func TestDecimate(t *testing.T) {
	xs := make([]float64, 1001)
	for k := range xs {
		xs[k] = float64(k)
	}

	out := Decimate(xs, 11)
	if len(out) != 11 {
		t.Fatalf("expected 11 samples, got %d", len(out))
	}
	if out[0] != 0 {
		t.Errorf("expected first sample 0, got %g", out[0])
	}
	if out[10] != 1000 {
		t.Errorf("expected last sample 1000, got %g", out[10])
	}
}

func TestDecimateShortInput(t *testing.T) {
	xs := []float64{1, 2, 3}
	out := Decimate(xs, 10)
	if len(out) != 3 {
		t.Errorf("expected input passed through, got %d samples", len(out))
	}
}

func TestPlot(t *testing.T) {
	xs := make([]float64, 200)
	for k := range xs {
		xs[k] = math.Sin(float64(k) / 20)
	}

	s := Plot(xs, 60, 8, "test curve")
	if s == "" {
		t.Fatal("expected non-empty plot")
	}
	if !strings.Contains(s, "test curve") {
		t.Error("expected caption in output")
	}
}

func TestRenderPNG(t *testing.T) {
	sc := scenario.Scenario{
		Params:   epi.Params{R0: 2, Pop: 1e7, Gamma: 1},
		Rate:     1e-6,
		Delta:    10,
		Dt:       0.1,
		Horizon:  5,
		Capacity: metrics.Capacity{Severe: 0.1, Threshold: 2.5e-3},
	}

	n := 51
	tr := &scenario.Trajectory{
		Times:       make([]float64, n),
		Infected:    make([]float64, n),
		Susceptible: make([]float64, n),
	}
	for k := 0; k < n; k++ {
		tr.Times[k] = float64(k) * sc.Dt
		tr.Infected[k] = 10 * math.Exp(float64(k)*sc.Dt)
		tr.Susceptible[k] = sc.Params.Pop - tr.Infected[k]
	}

	path := filepath.Join(t.TempDir(), "trajectories.png")
	if err := RenderPNG(path, "test chart", sc, tr); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty PNG")
	}
}
