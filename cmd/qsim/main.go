package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/qsim/internal/analysis"
	"github.com/san-kum/qsim/internal/config"
	"github.com/san-kum/qsim/internal/evolve"
	"github.com/san-kum/qsim/internal/linalg"
	"github.com/san-kum/qsim/internal/store"
	"github.com/san-kum/qsim/internal/viz"
)

var (
	dataDir    string
	verbose    bool
	dt         float64
	duration   float64
	stepper    string
	preset     string
	configFile string
	// analysis target
	level int
	// plot geometry
	plotHeight int
	plotWidth  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qsim",
		Short: "open quantum system simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".qsim", "data directory")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	evolveCmd := &cobra.Command{
		Use:   "evolve [system]",
		Short: "evolve a device under its Lindbladian",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEvolve,
	}
	evolveCmd.Flags().Float64Var(&dt, "dt", 0, "timestep in seconds (0 = from config)")
	evolveCmd.Flags().Float64Var(&duration, "time", 0, "duration in seconds (0 = from config)")
	evolveCmd.Flags().StringVar(&stepper, "stepper", "", "stepper: rk4 or euler")
	evolveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	evolveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run populations",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotHeight, "height", 12, "plot height")
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [system]",
		Short: "print the bare transition spectrum of a device",
		Args:  cobra.MaximumNArgs(1),
		RunE:  spectrumDevice,
	}
	spectrumCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	spectrumCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a population trace",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&level, "level", 0, "basis state to analyze")
	analyzeCmd.Flags().IntVar(&plotHeight, "height", 15, "plot height")
	analyzeCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")

	ramseyCmd := &cobra.Command{
		Use:   "ramsey [run_id]",
		Short: "extract fringe frequency and decay time from a trace",
		Args:  cobra.ExactArgs(1),
		RunE:  ramseyRun,
	}
	ramseyCmd.Flags().IntVar(&level, "level", 0, "basis state to analyze")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSONRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [system]",
		Short: "list available presets for a system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for system: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a starter config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}

	rootCmd.AddCommand(evolveCmd, listCmd, plotCmd, spectrumCmd, analyzeCmd,
		ramseyCmd, exportCmd, exportJSONCmd, exportCSVCmd, presetsCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	lvl := zerolog.InfoLevel
	if verbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().Logger()
}

func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, string, error) {
	system := "default"
	if len(args) > 0 {
		system = args[0]
	}

	cfg := config.DefaultConfig()
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	case preset != "":
		cfg = config.GetPreset(system, preset)
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)",
				preset, config.ListPresets(system))
		}
	case len(args) > 0:
		return nil, "", fmt.Errorf("system %q needs --preset or --config", system)
	}

	// CLI flags override the resolved config.
	if cmd.Flags().Changed("dt") {
		cfg.Run.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Run.Duration = duration
	}
	if cmd.Flags().Changed("stepper") {
		cfg.Run.Stepper = stepper
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return cfg, system, nil
}

func runEvolve(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg, system, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	dev, err := cfg.BuildDevice()
	if err != nil {
		return err
	}
	n := dev.FullDimension()

	h, err := dev.FullHamiltonian()
	if err != nil {
		return err
	}

	genCfg := evolve.DefaultGeneratorConfig()
	if cfg.Run.AngularScale != 0 {
		genCfg.AngularScale = cfg.Run.AngularScale
	}
	gen, err := evolve.NewGenerator(h, dev.Dissipators(), genCfg)
	if err != nil {
		return err
	}

	var step evolve.Stepper
	switch cfg.Run.Stepper {
	case "euler":
		step = evolve.NewEuler()
	default:
		step = evolve.NewRK4()
	}

	sim := evolve.New(gen, step, log)
	sim.AddMetric(evolve.NewTraceDrift(n))
	sim.AddMetric(evolve.NewPurity(n))
	initial := cfg.InitialIndex()
	sim.AddMetric(evolve.NewPopulation(n, initial))

	log.Info().
		Str("system", system).
		Int("dimension", n).
		Int("dissipators", len(dev.Dissipators())).
		Float64("dt", cfg.Run.Dt).
		Float64("duration", cfg.Run.Duration).
		Msg("starting evolution")

	start := time.Now()
	result, err := sim.Run(context.Background(), evolve.BasisDensity(n, initial), evolve.Config{
		Dt:            cfg.Run.Dt,
		Duration:      cfg.Run.Duration,
		ValidateState: true,
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	stepperName := cfg.Run.Stepper
	if stepperName == "" {
		stepperName = "rk4"
	}
	runID, err := st.Save(system, cfg.Run.Dt, cfg.Run.Duration, stepperName, result)
	if err != nil {
		return err
	}

	log.Info().
		Str("run_id", runID).
		Dur("elapsed", elapsed).
		Int("steps", result.StepsTaken).
		Float64("trace_drift", result.TraceDrift).
		Msg("evolution complete")

	fmt.Println(viz.RunSummary(system, n, result.StepsTaken, result.TraceDrift, result.Metrics))
	fmt.Println(viz.Populations(result.Times, result.Populations, 12, 80))
	fmt.Printf("\nrun id: %s\n", runID)

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYSTEM\tTIME\tDURATION\tDT\tSTEPPER\tDIM\tDRIFT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.3gs\t%.3gs\t%s\t%d\t%.2e\n",
			run.ID,
			run.System,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Stepper,
			run.Dimension,
			run.TraceDrift,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	pops, times, err := st.LoadPopulations(runID)
	if err != nil {
		return err
	}
	if len(pops) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("system: %s\n", meta.System)
	fmt.Printf("samples: %d\n\n", len(pops))

	fmt.Println(viz.Populations(times, pops, plotHeight, plotWidth))
	return nil
}

func spectrumDevice(cmd *cobra.Command, args []string) error {
	cfg, system, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	dev, err := cfg.BuildDevice()
	if err != nil {
		return err
	}

	h, err := dev.FullHamiltonian()
	if err != nil {
		return err
	}

	fmt.Printf("system: %s\n", system)
	fmt.Printf("subsystems: %d, full dimension: %d\n", len(dev.Subsystems()), dev.FullDimension())
	if !linalg.IsHermitian(h.Matrix(), 1e-9) {
		return fmt.Errorf("full Hamiltonian is not Hermitian; check interaction strengths")
	}
	fmt.Println("hermitian: yes")

	levels := linalg.Diagonal(h.Matrix())
	ground := levels[0]

	fmt.Println("\nbare levels (relative to ground, Hz):")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tENERGY")
	for i, e := range levels {
		fmt.Fprintf(w, "%d\t%.6e\n", i, e-ground)
	}
	return w.Flush()
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	data, sampleDt, err := loadTrace(st, runID, level)
	if err != nil {
		return err
	}
	if sampleDt == 0 {
		sampleDt = meta.Dt
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("system: %s, level: p%d\n\n", meta.System, level)

	ps := analysis.PowerSpectrum(data)
	freqs := analysis.Frequencies(len(data), sampleDt)

	fmt.Println(viz.Spectrum(freqs, ps, plotHeight, plotWidth))
	fmt.Println()

	freq := analysis.DominantFrequency(data, sampleDt)
	fmt.Printf("dominant frequency: %.6g hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.6g s\n", 1.0/freq)
	}

	return nil
}

func ramseyRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	pops, times, err := st.LoadPopulations(runID)
	if err != nil {
		return err
	}
	if len(pops) == 0 {
		return fmt.Errorf("no data")
	}
	if level >= len(pops[0]) {
		return fmt.Errorf("level %d out of range for %d-dimensional run", level, len(pops[0]))
	}

	series := make([]float64, len(pops))
	for i := range pops {
		series[i] = pops[i][level]
	}

	fmt.Printf("ramsey analysis: %s\n", meta.ID)
	fmt.Printf("system: %s, level: p%d\n\n", meta.System, level)

	detune, err := analysis.RamseyDetuning(times, series)
	if err != nil {
		return err
	}
	fmt.Printf("fringe frequency: %.6g hz\n", detune)

	if amp, tau, err := analysis.FitExponentialDecay(times, series); err == nil {
		fmt.Printf("decay fit: amplitude %.4f, tau %.4g s\n", amp, tau)
	}

	return nil
}

func loadTrace(st *store.Store, runID string, k int) ([]float64, float64, error) {
	pops, times, err := st.LoadPopulations(runID)
	if err != nil {
		return nil, 0, err
	}
	if len(pops) == 0 {
		return nil, 0, fmt.Errorf("no data")
	}
	if k >= len(pops[0]) {
		return nil, 0, fmt.Errorf("level %d out of range for %d-dimensional run", k, len(pops[0]))
	}

	data := make([]float64, len(pops))
	for i := range pops {
		data[i] = pops[i][k]
	}

	sampleDt := 0.0
	if len(times) > 1 {
		sampleDt = times[1] - times[0]
	}
	return data, sampleDt, nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportJSONRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	pops, times, err := st.LoadPopulations(runID)
	if err != nil {
		return err
	}

	result := &evolve.Result{
		Times:       times,
		Populations: pops,
		Metrics:     meta.Metrics,
		TraceDrift:  meta.TraceDrift,
		StepsTaken:  meta.Steps,
	}

	return store.ExportJSONStdout(meta.System, meta.Stepper, meta.Dt, meta.Duration, result)
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	pops, times, err := st.LoadPopulations(runID)
	if err != nil {
		return err
	}
	if len(pops) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := range pops[0] {
		header = append(header, fmt.Sprintf("p%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range pops {
		row := []string{strconv.FormatFloat(times[i], 'g', -1, 64)}
		for _, val := range pops[i] {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}
