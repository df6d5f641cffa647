package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/epiforge/episim/internal/config"
	"github.com/epiforge/episim/internal/integrators"
	"github.com/epiforge/episim/internal/scenario"
	"github.com/epiforge/episim/internal/sim"
	"github.com/epiforge/episim/internal/sweep"
	"github.com/epiforge/episim/internal/viz"
)

var (
	r0         float64
	population float64
	gamma      float64
	rate       float64
	delta      float64
	injectAt   float64
	dt         float64
	horizon    float64
	severe     float64
	threshold  float64
	configFile string
	preset     string
	pngPath    string
	showPlot   bool
	ratesArg   string
	deltasArg  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "episim",
		Short: "early-injection experiments on a compartmental epidemic model",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run one scenario and report its metrics",
		RunE:  runScenario,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "print ASCII trajectory plots")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "baseline vs perturbed: hospital-stress and total-infections deltas",
		RunE:  compareScenarios,
	}
	addScenarioFlags(compareCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep background rates (and optionally injection sizes)",
		RunE:  sweepScenarios,
	}
	addScenarioFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&ratesArg, "rates", "1e-6,1e-5", "comma-separated background rates")
	sweepCmd.Flags().StringVar(&deltasArg, "deltas", "", "comma-separated injection sizes")

	integratorsCmd := &cobra.Command{
		Use:   "integrators [name...]",
		Short: "compare integration schemes on the same scenario",
		RunE:  compareIntegrators,
	}
	addScenarioFlags(integratorsCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "step the perturbed scenario with a live terminal view",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := buildScenario(cmd)
			if err != nil {
				return err
			}
			return viz.RunLive(sc)
		},
	}
	addScenarioFlags(liveCmd)

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "render the baseline trajectories as a chart",
		RunE:  plotScenario,
	}
	addScenarioFlags(plotCmd)
	plotCmd.Flags().StringVar(&pngPath, "png", "", "write a PNG chart to this path")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, compareCmd, sweepCmd, integratorsCmd, liveCmd, plotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&r0, "r0", config.DefaultR0, "basic reproduction number")
	f.Float64Var(&population, "pop", config.DefaultPopulation, "population size")
	f.Float64Var(&gamma, "gamma", config.DefaultGamma, "recovery rate")
	f.Float64Var(&rate, "rate", config.DefaultRate, "background infected fraction at seeding")
	f.Float64Var(&delta, "delta", config.DefaultDelta, "injected infections")
	f.Float64Var(&injectAt, "inject-at", 0, "inject delta at this time instead of at seeding")
	f.Float64Var(&dt, "dt", config.DefaultDt, "integration step size")
	f.Float64Var(&horizon, "time", config.DefaultHorizon, "simulation horizon")
	f.Float64Var(&severe, "severe", config.DefaultSevere, "severe-case fraction of infections")
	f.Float64Var(&threshold, "threshold", config.DefaultThreshold, "hospital capacity as population fraction")
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
}

func buildScenario(cmd *cobra.Command) (scenario.Scenario, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return scenario.Scenario{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return scenario.Scenario{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override preset and config file values.
	if cmd.Flags().Changed("r0") {
		cfg.R0 = r0
	}
	if cmd.Flags().Changed("pop") {
		cfg.Population = population
	}
	if cmd.Flags().Changed("gamma") {
		cfg.Gamma = gamma
	}
	if cmd.Flags().Changed("rate") {
		cfg.Rate = rate
	}
	if cmd.Flags().Changed("delta") {
		cfg.Delta = delta
	}
	if cmd.Flags().Changed("inject-at") {
		cfg.InjectAt = injectAt
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Horizon = horizon
	}
	if cmd.Flags().Changed("severe") {
		cfg.Severe = severe
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Threshold = threshold
	}

	return cfg.Scenario(), nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := buildScenario(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("running scenario (r0=%.2f, rate=%g, delta=%g)...\n", sc.Params.R0, sc.Rate, sc.Delta)
	start := time.Now()

	base, err := scenario.Baseline(context.Background(), sc)
	if err != nil {
		return err
	}
	pert, err := scenario.Perturbed(context.Background(), sc)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v (%d points per run)\n\n", elapsed, len(base.Times))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tBASELINE\tPERTURBED")
	for _, name := range []string{"peak_infected", "attack_rate", "hospital_stress"} {
		fmt.Fprintf(w, "%s\t%.6g\t%.6g\n", name, base.Metrics[name], pert.Metrics[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if showPlot {
		fmt.Println()
		fmt.Println(viz.Plot(base.Infected, 80, 10, "infected (baseline)"))
		fmt.Println()
		fmt.Println(viz.Plot(base.Susceptible, 80, 10, "susceptible (baseline)"))
	}

	return nil
}

func compareScenarios(cmd *cobra.Command, args []string) error {
	sc, err := buildScenario(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	deltas, err := scenario.Compare(context.Background(), sc)
	if err != nil {
		return err
	}

	fmt.Printf("rate=%g delta=%g (completed in %v)\n", sc.Rate, sc.Delta, time.Since(start))
	fmt.Printf("  hospital-stress delta:   %.2f\n", deltas.HospitalStress)
	fmt.Printf("  total-infections delta:  %.2f\n", deltas.TotalInfections)
	return nil
}

func sweepScenarios(cmd *cobra.Command, args []string) error {
	sc, err := buildScenario(cmd)
	if err != nil {
		return err
	}

	rates, err := parseFloats(ratesArg)
	if err != nil {
		return fmt.Errorf("invalid --rates: %w", err)
	}
	var deltas []float64
	if deltasArg != "" {
		if deltas, err = parseFloats(deltasArg); err != nil {
			return fmt.Errorf("invalid --deltas: %w", err)
		}
	}

	grid := sweep.Grid{Rates: rates, Deltas: deltas}
	points, err := grid.Run(context.Background(), sc)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RATE\tDELTA\tSTRESS\tINFECTIONS")
	for _, p := range points {
		fmt.Fprintf(w, "%g\t%g\t%.2f\t%.2f\n", p.Rate, p.Delta, p.Deltas.HospitalStress, p.Deltas.TotalInfections)
	}
	return w.Flush()
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	sc, err := buildScenario(cmd)
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names = []string{"lagged", "euler", "rk4"}
	}

	fmt.Printf("comparing schemes (dt=%g, time=%.1f)\n\n", sc.Dt, sc.Horizon)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCHEME\tPEAK\tATTACK\tSTRESS\tTIME_MS")

	for _, name := range names {
		integ, err := getIntegrator(name)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		start := time.Now()
		tr, err := scenario.RunWith(context.Background(), sc, integ)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%s\t%.6g\t%.4f\t%.6g\t%.2f\n",
			name,
			tr.Metrics["peak_infected"],
			tr.Metrics["attack_rate"],
			tr.Metrics["hospital_stress"],
			float64(elapsed.Microseconds())/1000,
		)
	}
	return w.Flush()
}

func getIntegrator(name string) (sim.Integrator, error) {
	switch name {
	case "lagged":
		return integrators.NewLagged(), nil
	case "euler":
		return integrators.NewEuler(), nil
	case "rk4":
		return integrators.NewRK4(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}

func plotScenario(cmd *cobra.Command, args []string) error {
	sc, err := buildScenario(cmd)
	if err != nil {
		return err
	}

	tr, err := scenario.Baseline(context.Background(), sc)
	if err != nil {
		return err
	}

	if pngPath != "" {
		title := fmt.Sprintf("SIR trajectories (r0=%.2f, rate=%g)", sc.Params.R0, sc.Rate)
		if err := viz.RenderPNG(pngPath, title, sc, tr); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngPath)
		return nil
	}

	fmt.Println(viz.Plot(tr.Infected, 80, 12, "infected"))
	fmt.Println()
	fmt.Println(viz.Plot(tr.Susceptible, 80, 12, "susceptible"))
	return nil
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
