package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/heatrod/internal/analysis"
	"github.com/san-kum/heatrod/internal/coeffs"
	"github.com/san-kum/heatrod/internal/config"
	"github.com/san-kum/heatrod/internal/experiment"
	"github.com/san-kum/heatrod/internal/fourier"
	"github.com/san-kum/heatrod/internal/lattice"
	"github.com/san-kum/heatrod/internal/optim"
	"github.com/san-kum/heatrod/internal/render"
	"github.com/san-kum/heatrod/internal/storage"
	"github.com/san-kum/heatrod/internal/stream"
	"github.com/san-kum/heatrod/internal/viz"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	dataDir  string
	logLevel string
	logJSON  bool

	// Rod
	preset       string
	configFile   string
	boundary     string
	coefficients string
	profile      string
	diffusivity  float64
	terms        int
	length       float64
	spacePoints  int
	timePoints   int
	timeEnd      float64
	workers      int
	seed         int64

	// Output
	outFile    string
	field      string
	gifFile    string
	pngDir     string
	chartFile  string
	heatFile   string
	maxFrames  int
	gifWidth   int
	withAtoms  bool
	frameRate  int
	theme      string
	playLoop   bool
	serveLoop  bool
	addr       string
	interval   time.Duration
	probeX     float64
	probeT     float64
	maxTerms   int
	minTerms   int
	showTerms  int
	sampleSize int
	decayModes int
	sweepSpecs []string
	metricName string
)

// main registers commands and flags and exits with status 1 if the command
// fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "heatrod",
		Short:         "Fourier-series heat conduction in a rod",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel, logJSON)
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".heatrod", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "evaluate a rod and save the run",
		RunE:  runRod,
	}
	addRodFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&chartFile, "chart", "", "write temperature profiles to this image (png, svg, pdf)")
	plotCmd.Flags().StringVar(&heatFile, "heatmap", "", "write a T(x, t) heat map to this image")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export one grid of a saved run as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")
	exportCSVCmd.Flags().StringVar(&field, "field", "temperature", "grid to export (temperature, flux)")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render an animation of a rod",
		RunE:  renderRod,
	}
	addRodFlags(renderCmd)
	renderCmd.Flags().StringVar(&gifFile, "gif", "heatrod.gif", "animated GIF output (empty to skip)")
	renderCmd.Flags().StringVar(&pngDir, "png-dir", "", "also write numbered PNG frames here")
	renderCmd.Flags().StringVar(&chartFile, "chart", "", "write a static profile chart")
	renderCmd.Flags().StringVar(&heatFile, "heatmap", "", "write a static T(x, t) heat map")
	renderCmd.Flags().IntVar(&maxFrames, "max-frames", 0, "frame limit (default from config)")
	renderCmd.Flags().IntVar(&gifWidth, "gif-width", 0, "downscale GIF frames to this width")
	renderCmd.Flags().BoolVar(&withAtoms, "lattice", true, "draw the jittering lattice panel")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "play a rod in the terminal",
		RunE:  playRod,
	}
	addRodFlags(playCmd)
	playCmd.Flags().IntVar(&frameRate, "fps", 30, "frames per second")
	playCmd.Flags().StringVar(&theme, "theme", "ember", "colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	playCmd.Flags().BoolVar(&playLoop, "loop", false, "restart after the last frame")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "stream frames over a websocket",
		RunE:  serveRod,
	}
	addRodFlags(serveCmd)
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	serveCmd.Flags().DurationVar(&interval, "interval", 50*time.Millisecond, "time between frames")
	serveCmd.Flags().BoolVar(&serveLoop, "loop", true, "restart after the last frame")

	convergeCmd := &cobra.Command{
		Use:   "converge",
		Short: "show truncation convergence at one point",
		RunE:  convergeRod,
	}
	addRodFlags(convergeCmd)
	convergeCmd.Flags().Float64Var(&probeX, "x", 0.37, "position, as a fraction of the length")
	convergeCmd.Flags().Float64Var(&probeT, "t", 0.01, "time, in units of L^2/D")
	convergeCmd.Flags().IntVar(&minTerms, "from", 1, "smallest number of terms")
	convergeCmd.Flags().IntVar(&maxTerms, "max-terms", 256, "largest number of terms")
	convergeCmd.Flags().IntVar(&decayModes, "modes", 5, "modes to fit decay rates for")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	coeffsCmd := &cobra.Command{
		Use:   "coeffs [set]",
		Short: "print series coefficients of a set or profile",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printCoeffs,
	}
	coeffsCmd.Flags().StringVar(&profile, "profile", "", "project a named profile ("+strings.Join(coeffs.ProfileNames(), ", ")+")")
	coeffsCmd.Flags().StringVar(&boundary, "boundary", "dirichlet", "boundary for --profile")
	coeffsCmd.Flags().IntVar(&showTerms, "terms", 10, "number of modes")
	coeffsCmd.Flags().IntVar(&sampleSize, "samples", 0, "also recover coefficients from this many profile samples")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "evaluate a metric over a parameter grid",
		RunE:  sweepRod,
	}
	addRodFlags(sweepCmd)
	sweepCmd.Flags().StringArrayVar(&sweepSpecs, "param", nil, "name=v1,v2,... ("+strings.Join(optim.Params, ", ")+"), repeatable")
	sweepCmd.Flags().StringVar(&metricName, "metric", "decay_time", "metric to minimise")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, renderCmd,
		playCmd, serveCmd, convergeCmd, sweepCmd, presetsCmd, coeffsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func setupLogging(level string, asJSON bool) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stderr)
	if asJSON {
		log.SetFormatter(&log.JSONFormatter{})
	}
	return nil
}

func addRodFlags(cmd *cobra.Command) {
	d := config.DefaultConfig()
	f := cmd.Flags()
	f.StringVar(&preset, "preset", "dirichlet_bump", "preset ("+strings.Join(sortedPresets(), ", ")+")")
	f.StringVar(&configFile, "config", "", "config file (yaml or ini), overrides the preset")
	f.StringVar(&boundary, "boundary", d.Boundary, "boundary (dirichlet, neumann)")
	f.StringVar(&coefficients, "coefficients", d.Coefficients, "named coefficient set")
	f.StringVar(&profile, "profile", "", "project a named initial profile instead of a set")
	f.Float64Var(&diffusivity, "diffusivity", d.Diffusivity, "thermal diffusivity D")
	f.IntVar(&terms, "terms", d.Terms, "number of series terms")
	f.Float64Var(&length, "length", d.Length, "rod length L")
	f.IntVar(&spacePoints, "points", d.Space.Points, "spatial samples")
	f.IntVar(&timePoints, "times", d.Time.Points, "time samples")
	f.Float64Var(&timeEnd, "end", d.Time.End, "final time, in units of L^2/D")
	f.IntVar(&workers, "workers", d.Workers, "goroutines per grid evaluation")
	f.Int64Var(&seed, "seed", d.Seed, "lattice seed")
}

func sortedPresets() []string {
	names := config.ListPresets()
	sort.Strings(names)
	return names
}

// resolveConfig layers preset, config file and changed flags, in that
// order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, sortedPresets())
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	f := cmd.Flags()
	if f.Changed("boundary") {
		cfg.Boundary = boundary
	}
	if f.Changed("coefficients") {
		cfg.Coefficients = coefficients
	}
	if f.Changed("profile") {
		cfg.Profile = profile
	}
	if f.Changed("diffusivity") {
		cfg.Diffusivity = diffusivity
	}
	if f.Changed("terms") {
		cfg.Terms = terms
	}
	if f.Changed("length") {
		cfg.Length = length
	}
	if f.Changed("points") {
		cfg.Space.Points = spacePoints
	}
	if f.Changed("times") {
		cfg.Time.Points = timePoints
	}
	if f.Changed("end") {
		cfg.Time.End = timeEnd
	}
	if f.Changed("workers") {
		cfg.Workers = workers
	}
	if f.Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func evaluate(ctx context.Context, cmd *cobra.Command) (*config.Config, *experiment.Result, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	res, err := experiment.New(cfg, nil).Run(ctx)
	if err != nil {
		return nil, nil, err
	}
	return cfg, res, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runRod(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	cfg, res, err := evaluate(ctx, cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	runID, err := st.Save(cfg, res)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", res.Elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("grid: %d positions x %d times\n", len(res.Space), len(res.Times))
	fmt.Println("\nmetrics:")
	printMetrics(res.Metrics)
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-30s %.6g\n", name, m[name])
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tBOUNDARY\tTERMS\tD\tGRID")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%g\t%dx%d\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Boundary,
			run.Terms,
			run.Diffusivity,
			run.SpacePoints,
			run.TimePoints,
		)
	}
	return w.Flush()
}

// loadResult rebuilds a result from a saved run. The solution is not
// restored.
func loadResult(runID string) (*storage.RunMetadata, *experiment.Result, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	temp, err := st.LoadGrid(runID, storage.Temperature)
	if err != nil {
		return nil, nil, err
	}
	flux, err := st.LoadGrid(runID, storage.Flux)
	if err != nil {
		return nil, nil, err
	}
	b, err := fourier.ParseBoundary(meta.Boundary)
	if err != nil {
		return nil, nil, err
	}

	return meta, &experiment.Result{
		Name:        meta.Name,
		Boundary:    b,
		Length:      meta.Length,
		Space:       temp.Space,
		Times:       temp.Times,
		Temperature: temp.Values,
		Flux:        flux.Values,
		Metrics:     meta.Metrics,
	}, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, res, err := loadResult(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("boundary: %s, %d terms\n\n", meta.Boundary, meta.Terms)

	last := len(res.Times) - 1
	for _, j := range []int{0, last} {
		graph := asciigraph.Plot(mat.Col(nil, j, res.Temperature),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("T(x) at t = %.4g", res.Times[j])),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	if len(res.Times) > 1 {
		fmt.Println(asciigraph.Plot(res.MeanTemperature(),
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption("mean T over time"),
		))
	}

	if chartFile != "" {
		if err := render.PlotProfiles(res, render.FrameIndices(len(res.Times), 6), chartFile); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", chartFile)
	}
	if heatFile != "" {
		lo, hi := res.Metrics["min_temperature"], res.Metrics["max_temperature"]
		if !(hi > lo) {
			hi = lo + 1
		}
		if err := render.PlotHeatMap(res, lo, hi, heatFile); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", heatFile)
	}
	return nil
}

func openOutput(path string) (*os.File, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	_, res, err := loadResult(args[0])
	if err != nil {
		return err
	}
	w, closeFn, err := openOutput(outFile)
	if err != nil {
		return err
	}
	if err := storage.ExportJSON(w, res); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	g, err := storage.New(dataDir).LoadGrid(args[0], storage.Field(field))
	if err != nil {
		return err
	}
	w, closeFn, err := openOutput(outFile)
	if err != nil {
		return err
	}
	if err := storage.WriteGrid(w, g.Space, g.Times, g.Values); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func renderRod(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	cfg, res, err := evaluate(ctx, cmd)
	if err != nil {
		return err
	}

	var lat *lattice.Lattice
	if withAtoms {
		lc := cfg.Lattice
		lat = lattice.New(lc.NX, lc.NY, cfg.Render.HeatHeight, lc.Amplitude, lc.Omega0, cfg.Seed)
	}
	fr, err := render.NewFrameRenderer(res, lat, render.OptionsFrom(cfg.Render))
	if err != nil {
		return err
	}

	limit := cfg.Render.MaxFrames
	if maxFrames > 0 {
		limit = maxFrames
	}
	frames, err := render.RenderFrames(ctx, fr, render.FrameIndices(fr.Frames(), limit), cfg.Workers)
	if err != nil {
		return err
	}

	if gifFile != "" {
		if err := render.SaveGIF(gifFile, frames, cfg.Render.FrameDelay, gifWidth); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d frames)\n", gifFile, len(frames))
	}
	if pngDir != "" {
		paths, err := render.WritePNGs(pngDir, frames)
		if err != nil {
			return err
		}
		fmt.Printf("wrote %d frames to %s\n", len(paths), pngDir)
	}
	if chartFile != "" {
		if err := render.PlotProfiles(res, render.FrameIndices(len(res.Times), 6), chartFile); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", chartFile)
	}
	if heatFile != "" {
		if err := render.PlotHeatMap(res, cfg.Render.VMin, cfg.Render.VMax, heatFile); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", heatFile)
	}
	return nil
}

func playRod(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	cfg, res, err := evaluate(ctx, cmd)
	if err != nil {
		return err
	}

	p := viz.NewPlayer(res, viz.PlayerOptions{
		FPS:   frameRate,
		VMin:  cfg.Render.VMin,
		VMax:  cfg.Render.VMax,
		Theme: theme,
		Loop:  playLoop,
	})
	_, err = tea.NewProgram(p, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func serveRod(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	_, res, err := evaluate(ctx, cmd)
	if err != nil {
		return err
	}

	fmt.Printf("streaming %s on %s (ws path /ws, metadata /meta)\n", res.Name, addr)
	return stream.ListenAndServe(ctx, addr, stream.NewHub(res, interval, serveLoop))
}

func convergeRod(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	build := func(n int) (*fourier.Solution, error) {
		c := *cfg
		c.Terms = n
		sol, _, _, err := experiment.New(&c, nil).Build()
		return sol, err
	}

	pts, err := analysis.Convergence(build, probeX, probeT/cfg.Diffusivity, analysis.DoublingOrders(minTerms, maxTerms))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TERMS\tT(x,t)\tDELTA")
	for _, p := range pts {
		fmt.Fprintf(w, "%d\t%.12g\t%.3e\n", p.Terms, p.Value, p.Delta)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	sol, err := build(cfg.Terms)
	if err != nil {
		return err
	}
	times := sol.Time()
	residual := analysis.BoundaryResidual(sol, times)
	fmt.Printf("\nboundary residual (%s ends, %d terms): max %.3e over %d times\n",
		sol.Boundary(), sol.Terms(), floats.Max(residual), len(times))

	if len(times) < 2 {
		return nil
	}
	fmt.Printf("\nmode decay at x = %g\n", probeX)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tFITTED RATE\tLAMBDA^2")
	for _, d := range analysis.DecayTable(sol, probeX, times, decayModes) {
		fmt.Fprintf(w, "%d\t%.6g\t%.6g\n", d.Mode, d.Rate, d.Expected)
	}
	return w.Flush()
}

func parseSweep(specs []string) ([]string, [][]float64, error) {
	if len(specs) == 0 {
		return nil, nil, fmt.Errorf("at least one --param is required")
	}
	names := make([]string, 0, len(specs))
	ranges := make([][]float64, 0, len(specs))
	for _, spec := range specs {
		name, list, ok := strings.Cut(spec, "=")
		if !ok || list == "" {
			return nil, nil, fmt.Errorf("bad --param %q, want name=v1,v2", spec)
		}
		var vals []float64
		for _, f := range strings.Split(list, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("bad value in --param %q: %w", spec, err)
			}
			vals = append(vals, v)
		}
		names = append(names, strings.TrimSpace(name))
		ranges = append(ranges, vals)
	}
	return names, ranges, nil
}

func sweepRod(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	names, ranges, err := parseSweep(sweepSpecs)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	points, best, err := optim.NewGridSearch(names, ranges, cfg.Workers).Search(ctx, cfg, metricName)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", strings.ToUpper(strings.Join(names, "\t")), strings.ToUpper(metricName))
	for _, p := range points {
		for _, n := range names {
			fmt.Fprintf(w, "%g\t", p.Params[n])
		}
		fmt.Fprintf(w, "%.6g\n", p.Value)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if best.Params == nil {
		fmt.Println("\nno point produced a finite value")
		return nil
	}
	parts := make([]string, 0, len(best.Params))
	for _, n := range best.SortedNames() {
		parts = append(parts, fmt.Sprintf("%s=%g", n, best.Params[n]))
	}
	fmt.Printf("\nbest: %s (%s = %.6g)\n", strings.Join(parts, " "), metricName, best.Value)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tBOUNDARY\tCOEFFICIENTS\tTERMS\tEND")
	for _, name := range sortedPresets() {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%g\n", name, cfg.Boundary, cfg.Coefficients, cfg.Terms, cfg.Time.End)
	}
	return w.Flush()
}

func printCoeffs(cmd *cobra.Command, args []string) error {
	var (
		src     fourier.Coefficients
		b       fourier.Boundary
		samples []float64
	)

	switch {
	case profile != "":
		p, err := coeffs.GetProfile(profile)
		if err != nil {
			return err
		}
		if b, err = fourier.ParseBoundary(boundary); err != nil {
			return err
		}
		if src, err = coeffs.Project(p, b, showTerms, coeffs.DefaultNodes); err != nil {
			return err
		}
		if sampleSize > 0 {
			samples = make([]float64, sampleSize)
			for k := range samples {
				samples[k] = p(float64(k) / float64(sampleSize-1))
			}
		}
	case len(args) == 1:
		set, err := coeffs.NewRegistry().Get(args[0])
		if err != nil {
			return err
		}
		src, b = set.Coeffs, set.Boundary
	default:
		fmt.Println("coefficient sets:", strings.Join(coeffs.NewRegistry().Names(), ", "))
		fmt.Println("profiles:", strings.Join(coeffs.ProfileNames(), ", "))
		return nil
	}

	var spectrum []float64
	if samples != nil {
		var err error
		if spectrum, err = analysis.Spectrum(samples, b, showTerms); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if spectrum != nil {
		fmt.Fprintln(w, "N\tC(N)\t|C(N)| FROM SAMPLES")
	} else {
		fmt.Fprintln(w, "N\tC(N)")
	}
	start := 1
	if b == fourier.Neumann {
		start = 0
	}
	for n := start; n <= showTerms; n++ {
		c, err := src.Coefficient(n)
		if err != nil {
			return err
		}
		if spectrum != nil {
			fmt.Fprintf(w, "%d\t% .10f\t%.10f\n", n, c, spectrum[n])
		} else {
			fmt.Fprintf(w, "%d\t% .10f\n", n, c)
		}
	}
	return w.Flush()
}
