package viz

import "github.com/guptarohit/asciigraph"

// Decimate reduces a trajectory to at most n evenly spaced samples,
// keeping the first and last points. Reference runs have millions of steps;
// terminal plots need a few dozen columns.
func Decimate(xs []float64, n int) []float64 {
	if n <= 1 || len(xs) <= n {
		return xs
	}
	out := make([]float64, n)
	stride := float64(len(xs)-1) / float64(n-1)
	for k := range out {
		out[k] = xs[int(float64(k)*stride)]
	}
	return out
}

// Plot renders a decimated trajectory as an ASCII line chart.
func Plot(xs []float64, width, height int, caption string) string {
	return asciigraph.Plot(Decimate(xs, width),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
