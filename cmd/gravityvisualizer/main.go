package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/VanDerGroot/gravityvisualizer/internal/audio"
	"github.com/VanDerGroot/gravityvisualizer/internal/config"
	"github.com/VanDerGroot/gravityvisualizer/internal/export"
	"github.com/VanDerGroot/gravityvisualizer/internal/lens"
	"github.com/VanDerGroot/gravityvisualizer/internal/render"
	"github.com/VanDerGroot/gravityvisualizer/internal/scene"
	"github.com/VanDerGroot/gravityvisualizer/internal/term"
	"github.com/VanDerGroot/gravityvisualizer/internal/viz"
)

var (
	configFile string
	preset     string
	debug      bool

	// Scene overrides
	gridSize int
	spacing  float64
	strength float64
	step     float64
	delayMS  int

	// Window
	backend     string
	withAudio   bool
	audioDriver string
	theme       string

	// Snapshot
	frames  int
	pitch   float64
	yaw     float64
	braille bool

	// Profile
	points      int
	plotHeight  int
	profileSpan float64
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logFile *os.File

	rootCmd := &cobra.Command{
		Use:   "gravityvisualizer",
		Short: "animated gravitational lensing of a 3d grid",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logFile = setupLogging(debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				logFile.Close()
			}
		},
		// Default to the window when no command given
		RunE:         runGUI,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVar(&debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	pf.IntVar(&gridSize, "size", config.DefaultGridSize, "grid points per axis")
	pf.Float64Var(&spacing, "spacing", config.DefaultSpacing, "grid spacing")
	pf.Float64Var(&strength, "strength", lens.DefaultStrength, "lens strength")
	pf.Float64Var(&step, "step", config.DefaultStep, "mass movement per frame")
	pf.IntVar(&delayMS, "delay", config.DefaultFrameDelayMS, "delay between frames (ms)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the animated grid in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	for _, c := range []*cobra.Command{rootCmd, guiCmd} {
		c.Flags().StringVar(&backend, "backend", windowBackend, "window backend ("+windowBackend+", term)")
		c.Flags().BoolVar(&withAudio, "audio", false, "play a hum that follows the mass")
		c.Flags().StringVar(&audioDriver, "audio-driver", config.AudioPortAudio, "audio driver (portaudio, beep)")
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the grid inside the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", "void", "color theme (void, night, slate)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [file.svg]",
		Short: "render one frame to svg",
		Args:  cobra.ExactArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&frames, "frames", 0, "frames to advance before the snapshot")
	snapshotCmd.Flags().Float64Var(&pitch, "pitch", 0, "camera pitch (degrees)")
	snapshotCmd.Flags().Float64Var(&yaw, "yaw", 0, "camera yaw (degrees)")
	snapshotCmd.Flags().BoolVar(&braille, "braille", false, "draw as braille dots like the terminal view")

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot lens displacement and alpha against distance",
		Args:  cobra.NoArgs,
		RunE:  runProfile,
	}
	profileCmd.Flags().IntVar(&points, "points", 60, "samples along the ray")
	profileCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")
	profileCmd.Flags().Float64Var(&profileSpan, "span", 0, "max distance (default twice the fade distance)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("presets:\n")
			for _, name := range config.ListPresets() {
				cfg, _ := config.GetPreset(name)
				fmt.Printf("  %-8s strength %.2f  grid %dx%.2f  step %.3f\n",
					name, cfg.Lens.Strength, cfg.Grid.Size, cfg.Grid.Spacing, cfg.Animation.Step)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(guiCmd, tuiCmd, snapshotCmd, profileCmd, presetsCmd, configCmd)
	return rootCmd
}

// loadConfig layers defaults, preset, config file and explicitly set
// flags, in that order, and validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	// Load config file if specified (overrides preset)
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	// Defaults name the gl window; a raylib build has no other.
	if cfg.Backend == config.BackendGL {
		cfg.Backend = windowBackend
	}

	// CLI flags override config
	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Grid.Size = gridSize
	}
	if flags.Changed("spacing") {
		cfg.Grid.Spacing = spacing
	}
	if flags.Changed("strength") {
		cfg.Lens.Strength = strength
	}
	if flags.Changed("step") {
		cfg.Animation.Step = step
	}
	if flags.Changed("delay") {
		cfg.FrameDelayMS = delayMS
	}
	if flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Changed("audio") {
		cfg.Audio = withAudio
	}
	if flags.Changed("audio-driver") {
		cfg.AudioDriver = audioDriver
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildScene(cfg *config.Config) (*scene.Scene, scene.State, error) {
	l, err := cfg.Lattice()
	if err != nil {
		return nil, scene.State{}, err
	}
	sc := scene.New(l, cfg.LensParams(), cfg.SphereParams())
	return sc, scene.NewState(l, cfg.Animation.Step), nil
}

func backends() *scene.Registry {
	r := scene.NewRegistry()
	r.Register(windowBackend, openWindow)
	r.Register(config.BackendTerm, term.Open)
	return r
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, st, err := buildScene(cfg)
	if err != nil {
		return err
	}

	b, release, err := backends().Open(cfg.Backend, scene.WindowOptions{
		Title:  cfg.Window.Title,
		Camera: cfg.Camera(),
	})
	if err != nil {
		return err
	}
	defer release()
	log.Printf("opened %s backend, %dx%d", cfg.Backend, cfg.Window.Width, cfg.Window.Height)

	observers := windowObservers(b)
	if cfg.Audio {
		hum := audio.NewHum(sc.Lattice().Bound())
		stop, err := audio.Start(cfg.AudioDriver, hum)
		if err != nil {
			return err
		}
		defer stop()
		observers = append(observers, hum, scene.ObserverFunc(func(st scene.State) {
			if st.Frame%100 == 0 {
				bass, mid, high := hum.Levels()
				log.Printf("frame %d: mass %+.2f, hum bass %.4f mid %.4f high %.4f",
					st.Frame, st.Animation.Offset, bass, mid, high)
			}
		}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	final, err := scene.Run(ctx, b, sc, st, cfg.FrameDelay(), observers...)
	log.Printf("stopped after %d frames", final.Frame)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, st, err := buildScene(cfg)
	if err != nil {
		return err
	}

	m := viz.NewModel(sc, st, cfg.Camera(), cfg.FrameDelay()).WithTheme(cfg.Theme)
	final, err := viz.Run(m)
	if err != nil {
		return err
	}
	fmt.Printf("stopped after %d frames\n", final.Frame)
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, st, err := buildScene(cfg)
	if err != nil {
		return err
	}

	for i := 0; i < frames; i++ {
		st = scene.Step(st, nil)
	}
	st.Camera.Pitch, st.Camera.Yaw = pitch, yaw

	cam := cfg.Camera()
	var svg string
	if braille {
		canvas := viz.NewCanvas(cam.Width/8, cam.Height/16, viz.GetTheme(cfg.Theme).BackgroundColor())
		proj := render.NewProjector(viz.CanvasCamera(cam, canvas))
		viz.Rasterize(canvas, sc.Project(proj, st))
		svg = export.CanvasToSVG(canvas, 4)
	} else {
		proj := render.NewProjector(cam)
		svg = export.SegmentsToSVG(sc.Project(proj, st), cam.Width, cam.Height)
	}

	if err := export.WriteFile(args[0], svg); err != nil {
		return err
	}
	fmt.Printf("frame %d (mass at %+.2f) written to %s\n", st.Frame, st.Animation.Offset, args[0])
	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p := cfg.LensParams()
	span := profileSpan
	if span <= 0 {
		span = 2 * p.MaxDistance
	}

	samples := p.Profile(span, points)
	if len(samples) == 0 {
		return fmt.Errorf("nothing to plot")
	}
	disp := make([]float64, len(samples))
	alpha := make([]float64, len(samples))
	for i, s := range samples {
		disp[i] = s.Displacement
		alpha[i] = s.Alpha
	}

	fmt.Println(asciigraph.Plot(disp,
		asciigraph.Height(plotHeight),
		asciigraph.Caption(fmt.Sprintf("displacement vs distance (strength %.2f, 0..%.1f)", p.Strength, span)),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(alpha,
		asciigraph.Height(plotHeight),
		asciigraph.Caption(fmt.Sprintf("alpha vs distance (fades out by %.1f)", p.MaxDistance)),
	))
	return nil
}
