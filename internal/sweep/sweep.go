package sweep

import (
	"context"

	"github.com/epiforge/episim/internal/scenario"
)

// Point is one cell of a sweep: the swept coordinates and the comparative
// metrics they produced.
type Point struct {
	Rate   float64
	Delta  float64
	Deltas scenario.Deltas
}

// Grid sweeps background infection rates, and optionally injection sizes,
// running one baseline-vs-perturbed comparison per cell. An empty Deltas
// list sweeps rates only, at the base scenario's injection size.
type Grid struct {
	Rates  []float64
	Deltas []float64
}

func (g Grid) Run(ctx context.Context, base scenario.Scenario) ([]Point, error) {
	deltas := g.Deltas
	if len(deltas) == 0 {
		deltas = []float64{base.Delta}
	}

	points := make([]Point, 0, len(g.Rates)*len(deltas))
	for _, rate := range g.Rates {
		for _, delta := range deltas {
			sc := base
			sc.Rate = rate
			sc.Delta = delta
			res, err := scenario.Compare(ctx, sc)
			if err != nil {
				return nil, err
			}
			points = append(points, Point{Rate: rate, Delta: delta, Deltas: *res})
		}
	}
	return points, nil
}
