package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/export"
	"github.com/san-kum/orrery/internal/gui"
	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/tui"
)

var (
	configFile string
	preset     string
	system     string
	zoom       float64
	speed      float64
	trails     bool

	// ephem
	ephemDays float64
	ephemStep float64
	csvPath   string

	// export
	outPath string
	atDay   float64
)

// main registers the CLI; the bare command opens the interactive GUI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "orrery",
		Short: "interactive Kepler solar-system explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}
	addViewFlags(rootCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "render the scene in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addViewFlags(tuiCmd)

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list the configured bodies",
		RunE:  listBodies,
	}
	addViewFlags(bodiesCmd)

	ephemCmd := &cobra.Command{
		Use:   "ephem [body]",
		Short: "sample a body's orbit (plot or CSV)",
		Args:  cobra.ExactArgs(1),
		RunE:  runEphem,
	}
	addViewFlags(ephemCmd)
	ephemCmd.Flags().Float64Var(&ephemDays, "days", 0, "sampling window in days (default one period)")
	ephemCmd.Flags().Float64Var(&ephemStep, "step", 0, "sampling step in days (default days/180)")
	ephemCmd.Flags().StringVar(&csvPath, "csv", "", "write CSV to this file instead of plotting")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "write an SVG snapshot of the scene",
		RunE:  runExport,
	}
	addViewFlags(exportCmd)
	exportCmd.Flags().StringVar(&outPath, "out", "scene.svg", "output file")
	exportCmd.Flags().Float64Var(&atDay, "day", 0, "simulation day to render")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list view presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, bodiesCmd, ephemCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "named view preset")
	cmd.Flags().StringVar(&system, "system", "", "body set: solar or inner")
	cmd.Flags().Float64Var(&zoom, "zoom", config.DefaultZoom, "initial zoom")
	cmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "simulation days per second")
	cmd.Flags().BoolVar(&trails, "trails", false, "draw motion trails")
}

// resolveConfig layers preset, config file, then changed flags, matching the
// usual precedence: explicit flags always win.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("system") {
		cfg.System = system
	}
	if cmd.Flags().Changed("zoom") {
		cfg.Zoom = zoom
	}
	if cmd.Flags().Changed("speed") {
		cfg.Speed = speed
	}
	if cmd.Flags().Changed("trails") {
		cfg.ShowTrails = trails
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func listBodies(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCLASS\tRADIUS KM\tA (AU)\tECC\tPERIOD (YR)")
	for _, b := range cfg.ResolveBodies() {
		if b.IsStar() {
			fmt.Fprintf(w, "%s\t%s\t%.0f\t-\t-\t-\n", b.Name, b.Class, b.RadiusKm)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%.0f\t%.3f\t%.4f\t%.2f\n",
			b.Name, b.Class, b.RadiusKm, b.SemiMajorAxisAU, b.Eccentricity, b.PeriodYears())
	}
	return w.Flush()
}

func runEphem(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	name := args[0]
	for _, b := range cfg.ResolveBodies() {
		if !strings.EqualFold(b.Name, name) {
			continue
		}

		days := ephemDays
		if days <= 0 {
			days = b.PeriodDays
		}
		step := ephemStep
		if step <= 0 {
			step = days / 180
		}

		pts, err := export.SampleEphemeris(b, days, step)
		if err != nil {
			return err
		}

		if csvPath != "" {
			f, err := os.Create(csvPath)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := export.WriteCSV(f, pts); err != nil {
				return err
			}
			fmt.Printf("wrote %d samples to %s\n", len(pts), csvPath)
			return nil
		}

		plot := asciigraph.Plot(export.Distances(pts),
			asciigraph.Height(14),
			asciigraph.Width(72),
			asciigraph.Caption(fmt.Sprintf("%s heliocentric distance (AU) over %.0f days", b.Name, days)))
		fmt.Println(plot)
		return nil
	}

	return fmt.Errorf("unknown body: %s", name)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	s, err := scene.New(cfg.ResolveBodies(),
		float64(cfg.Width), float64(cfg.Height), cfg.Zoom, cfg.Speed)
	if err != nil {
		return err
	}
	s.Clock.ElapsedDays = atDay
	s.Step(0)

	if err := os.WriteFile(outPath, []byte(export.SceneSVG(s)), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (day %.0f)\n", outPath, atDay)
	return nil
}
