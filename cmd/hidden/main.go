package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/hidden/internal/automation"
	"github.com/san-kum/hidden/internal/config"
	"github.com/san-kum/hidden/internal/export"
	"github.com/san-kum/hidden/internal/gui"
	"github.com/san-kum/hidden/internal/metrics"
	"github.com/san-kum/hidden/internal/noise"
	"github.com/san-kum/hidden/internal/scene"
	"github.com/san-kum/hidden/internal/sim"
	"github.com/san-kum/hidden/internal/viz"
)

var (
	configFile string
	envFile    string
	seed       int64
	fps        int
	width      int
	height     int
	fullscreen bool
	titleImage string
	theme       string
	runFrames   int
	benchFrames int
	scenario    string
	scriptFile  string
	numRuns     int
	snapFrame   int
	noBackdrop  bool
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hidden: ")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hidden",
		Short: "ink airflows you can slice with the mouse",
		RunE:  runDefault,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "dotenv file with HIDDEN_* overrides")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	addWindowFlags(rootCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the window (default)",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	addWindowFlags(guiCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal on a braille canvas",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", "paper", fmt.Sprintf("terminal theme %v", viz.ThemeNames()))

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "play a scripted session headless and report",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().IntVar(&runFrames, "frames", 0, "frames to play (0 uses the scenario's length)")
	runCmd.Flags().StringVar(&scriptFile, "file", "", "scenario file (yaml) with scripted steps")
	runCmd.Flags().IntVar(&numRuns, "runs", 1, "consecutive seeds to run in parallel")
	runCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "screen width")
	runCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "screen height")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [out.svg]",
		Short: "render one frame of a scripted session to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  snapshot,
	}
	snapshotCmd.Flags().StringVar(&scenario, "scenario", "idle", "scripted input")
	snapshotCmd.Flags().IntVar(&snapFrame, "frame", 300, "frame to capture")
	snapshotCmd.Flags().BoolVar(&noBackdrop, "no-backdrop", false, "omit the backdrop lines")
	snapshotCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "screen width")
	snapshotCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "screen height")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure headless frames per second for every scenario",
		Args:  cobra.NoArgs,
		RunE:  bench,
	}
	benchCmd.Flags().IntVar(&benchFrames, "frames", 600, "frames per scenario")

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list scripted scenarios",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFRAMES\tDESCRIPTION")
			for _, name := range config.ListScenarios() {
				s := config.Scenarios[name]
				fmt.Fprintf(w, "%s\t%d\t%s\n", name, s.Frames, s.Description)
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, snapshotCmd, benchCmd, scenariosCmd)
	return rootCmd
}

func addWindowFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "window width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "window height")
	cmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "start fullscreen")
	cmd.Flags().StringVar(&titleImage, "title-image", "", "image shown on the title screen")
}

// loadConfig layers defaults, the config file, the dotenv file, then any
// flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		log.Printf("config: %s", configFile)
	}
	if err := cfg.ApplyEnv(envFile); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.Window.FPS = fps
	}
	if flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Changed("height") {
		cfg.Window.Height = height
	}
	if flags.Changed("fullscreen") {
		cfg.Window.Fullscreen = fullscreen
	}
	if flags.Changed("title-image") {
		cfg.TitleImage = titleImage
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, cfg.Validate()
}

// runDefault opens whichever renderer the config names.
func runDefault(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Renderer == "tui" {
		return startTUI(cfg)
	}
	startGUI(cfg)
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	startGUI(cfg)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return startTUI(cfg)
}

func startGUI(cfg *config.Config) {
	gui.Run(gui.Options{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		FPS:        cfg.Window.FPS,
		Fullscreen: cfg.Window.Fullscreen,
		Seed:       cfg.Seed,
		TitleImage: cfg.TitleImage,
	})
}

func startTUI(cfg *config.Config) error {
	return viz.Run(viz.Options{
		Seed:  cfg.Seed,
		FPS:   cfg.Window.FPS,
		Theme: theme,
	})
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rc := sim.RunConfig{
		FPS:    cfg.Window.FPS,
		Seed:   cfg.Seed,
		Width:  float64(cfg.Window.Width),
		Height: float64(cfg.Window.Height),
	}

	name := cfg.Scenario
	if len(args) > 0 {
		name = args[0]
	}
	if scriptFile != "" {
		s, err := automation.LoadScenario(scriptFile)
		if err != nil {
			return err
		}
		seq, err := s.Script()
		if err != nil {
			return err
		}
		name, rc.Frames, rc.Script = s.Name, s.Frames(), seq
	} else {
		sc, err := config.GetScenario(name)
		if err != nil {
			return err
		}
		rc.Frames, rc.Script = sc.Frames, sc.Script
	}
	if runFrames > 0 {
		rc.Frames = runFrames
	}

	out := cmd.OutOrStdout()
	if numRuns > 1 {
		return runEnsemble(out, name, rc)
	}

	pop := metrics.NewPopulation(0)
	speed := metrics.NewMeanSpeed()
	peak := metrics.NewPeakSpeed()
	fade := metrics.NewFadeFrame()
	all := []metrics.Metric{pop, speed, peak, fade}
	runner := sim.NewRunner()
	for _, m := range all {
		runner.AddObserver(m)
	}

	fmt.Fprintf(out, "running %s (seed %d, %d frames)...\n", name, rc.Seed, rc.Frames)
	start := time.Now()
	result, err := runner.Run(context.Background(), rc)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintf(out, "completed in %v (%v of session time)\n", elapsed, result.Elapsed)
	fmt.Fprintf(out, "final phase: %s\n", result.Final)
	fmt.Fprintln(out, "\nmetrics:")
	for _, m := range all {
		fmt.Fprintf(out, "  %s: %.4f\n", m.Name(), m.Value())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, asciigraph.Plot(pop.History(),
		asciigraph.Height(8), asciigraph.Width(70), asciigraph.LowerBound(0),
		asciigraph.Caption("population")))
	fmt.Fprintln(out)
	fmt.Fprintln(out, asciigraph.Plot(speed.History(),
		asciigraph.Height(8), asciigraph.Width(70), asciigraph.LowerBound(0),
		asciigraph.Caption("mean speed")))
	return nil
}

func runEnsemble(out io.Writer, name string, rc sim.RunConfig) error {
	fmt.Fprintf(out, "running %s across %d seeds from %d...\n\n", name, numRuns, rc.Seed)
	results, err := sim.NewEnsemble(numRuns, rc.Seed).Run(context.Background(), rc)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tFRAMES\tFADE FRAME\tFINAL")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", r.Seed, r.Frames, r.FadeFrame, r.Final)
	}
	return w.Flush()
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := config.GetScenario(scenario)
	if err != nil {
		return err
	}
	if snapFrame < 0 {
		return fmt.Errorf("frame must be non-negative, got %d", snapFrame)
	}

	var backdrop *scene.Backdrop
	if !noBackdrop {
		backdrop = scene.NewBackdrop(noise.NewPerlin(cfg.Seed + 1))
	}
	capture := export.NewCapture(snapFrame, backdrop, rand.New(rand.NewSource(cfg.Seed+2)))

	runner := sim.NewRunner()
	runner.AddObserver(capture)
	_, err = runner.Run(context.Background(), sim.RunConfig{
		Frames: snapFrame + 1,
		FPS:    cfg.Window.FPS,
		Seed:   cfg.Seed,
		Width:  float64(cfg.Window.Width),
		Height: float64(cfg.Window.Height),
		Script: sc.Script,
	})
	if err != nil {
		return err
	}

	fr, ok := capture.Frame()
	if !ok {
		return fmt.Errorf("frame %d was not reached", snapFrame)
	}
	if err := export.WriteSVG(args[0], fr); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d trails, frame %d)\n", args[0], len(fr.Trails), snapFrame)
	return nil
}

func bench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking %d frames per scenario\n\n", benchFrames)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tFRAMES\tTIME\tFRAMES/SEC\tREALTIME")

	for _, name := range config.ListScenarios() {
		sc := config.Scenarios[name]
		rc := sim.RunConfig{
			Frames: benchFrames,
			FPS:    cfg.Window.FPS,
			Seed:   cfg.Seed,
			Width:  float64(cfg.Window.Width),
			Height: float64(cfg.Window.Height),
			Script: sc.Script,
		}

		start := time.Now()
		result, err := sim.NewRunner().Run(context.Background(), rc)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		perSec := float64(result.Frames) / elapsed.Seconds()
		fmt.Fprintf(w, "%s\t%d\t%v\t%.0f\t%.1fx\n",
			name, result.Frames, elapsed.Round(time.Microsecond), perSec, perSec/float64(cfg.Window.FPS))
	}
	return w.Flush()
}
