package viz

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/epiforge/episim/internal/scenario"
)

const chartPoints = 2000

// RenderPNG writes a PNG line chart of the infected and susceptible
// trajectories, with a dashed line at the infected count where the
// severe-case load reaches hospital capacity.
func RenderPNG(path, title string, sc scenario.Scenario, tr *scenario.Trajectory) error {
	times := Decimate(tr.Times, chartPoints)
	infected := Decimate(tr.Infected, chartPoints)
	susceptible := Decimate(tr.Susceptible, chartPoints)

	capacity := sc.Params.Pop * sc.Capacity.Threshold / sc.Capacity.Severe
	capLine := make([]float64, len(times))
	for k := range capLine {
		capLine[k] = capacity
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1024,
		Height: 512,
		XAxis: chart.XAxis{
			Name: "time (infectious periods)",
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
		},
		YAxis: chart.YAxis{
			Name: "people",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "infected",
				XValues: times,
				YValues: infected,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "susceptible",
				XValues: times,
				YValues: susceptible,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "hospital capacity",
				XValues: times,
				YValues: capLine,
				Style: chart.Style{
					StrokeColor:     drawing.Color{R: 128, G: 128, B: 128, A: 255},
					StrokeWidth:     1.5,
					StrokeDashArray: []float64{5.0, 5.0},
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return graph.Render(chart.PNG, f)
}
