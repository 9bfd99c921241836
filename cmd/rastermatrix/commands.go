package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/rastermatrix/internal/config"
	"github.com/san-kum/rastermatrix/internal/driver"
	"github.com/san-kum/rastermatrix/internal/export"
	"github.com/san-kum/rastermatrix/internal/fractal"
	"github.com/san-kum/rastermatrix/internal/raster"
	"github.com/san-kum/rastermatrix/internal/viz"
	"github.com/san-kum/rastermatrix/internal/window"
)

// loadConfig resolves --config, then --preset, then the defaults, and
// applies flag overrides.
func loadConfig() (*config.Config, error) {
	return loadConfigOr("")
}

// loadConfigOr is loadConfig with fallback used instead of the defaults
// when neither --config nor --preset is given.
func loadConfigOr(fallback string) (*config.Config, error) {
	name := preset
	if configFile == "" && name == "" {
		name = fallback
	}

	var cfg *config.Config
	switch {
	case configFile != "":
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = c
	case name != "":
		cfg = config.GetPreset(name)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
	default:
		cfg = config.DefaultConfig()
	}

	if workers > 0 {
		cfg.Fractal.Workers = workers
	}
	if maxIter > 0 {
		cfg.Fractal.MaxIterations = maxIter
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newDriver(cfg *config.Config, logger *slog.Logger) (*driver.Driver, error) {
	m, err := cfg.NewMatrix()
	if err != nil {
		return nil, fmt.Errorf("create matrix: %w", err)
	}
	return driver.New(m, cfg.Fractal.MaxIterations, driver.Options{
		Palette: cfg.Palette(),
		Overlay: driver.Overlay{
			Enabled: cfg.Overlay.Enabled,
			Pos:     image.Pt(cfg.Overlay.X, cfg.Overlay.Y),
			Text:    cfg.OverlayText(),
		},
		Workers: cfg.Fractal.Workers,
		Logger:  logger.With("component", "driver"),
	}), nil
}

func setup(cmd *cobra.Command) (*config.Config, *driver.Driver, *slog.Logger, error) {
	return setupOr(cmd, "")
}

func setupOr(cmd *cobra.Command, fallback string) (*config.Config, *driver.Driver, *slog.Logger, error) {
	logger := slog.Default().With("command", cmd.Name())
	cfg, err := loadConfigOr(fallback)
	if err != nil {
		return nil, nil, nil, err
	}
	drv, err := newDriver(cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, drv, logger, nil
}

// livePreset picks a grid that fits a standard terminal for the mode.
func livePreset(m viz.Mode) string {
	if m == viz.ModeBraille {
		return "braille"
	}
	return "terminal"
}

func runLive(cmd *cobra.Command, args []string) error {
	m, err := viz.ParseMode(mode)
	if err != nil {
		return err
	}
	cfg, drv, logger, err := setupOr(cmd, livePreset(m))
	if err != nil {
		return err
	}
	if theme != "" {
		cfg.Theme = theme
	}

	size := cfg.CanvasSize()
	return viz.Run(cmd.Context(), viz.Options{
		Driver:     drv,
		Mode:       m,
		Width:      size.Width,
		Height:     size.Height,
		Background: cfg.BackgroundColor(),
		FrameRate:  cfg.FrameRate,
		Theme:      cfg.Theme,
		Logger:     logger.With("component", "viz"),
	})
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, drv, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	size := cfg.CanvasSize()
	return window.Run(cmd.Context(), drv, window.Options{
		Width:      size.Width,
		Height:     size.Height,
		FPS:        cfg.FrameRate,
		Background: cfg.BackgroundColor(),
		ShowHUD:    showHUD,
		Logger:     logger.With("component", "window"),
	})
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, drv, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	kind := format
	if kind == "" {
		kind = strings.TrimPrefix(strings.ToLower(filepath.Ext(renderOut)), ".")
	}
	write := export.PNG
	switch kind {
	case "png":
	case "svg":
		write = export.SVG
	default:
		return fmt.Errorf("unknown format %q (want png or svg)", kind)
	}

	for range skip {
		drv.Animation().Advance()
	}

	f, err := os.Create(renderOut)
	if err != nil {
		return err
	}
	defer f.Close()

	size := cfg.CanvasSize()
	canvas := export.Canvas{Width: size.Width, Height: size.Height, Background: cfg.BackgroundColor()}
	if err := write(cmd.Context(), f, drv, canvas); err != nil {
		return err
	}
	logger.Info("frame written", "path", renderOut, "cap", drv.Stats().MaxIterations, "size", fmt.Sprintf("%dx%d", size.Width, size.Height))
	return f.Close()
}

func runGIF(cmd *cobra.Command, args []string) error {
	cfg, drv, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	d := delay
	if d <= 0 {
		d = max(1, 100/cfg.FrameRate)
	}

	f, err := os.Create(gifOut)
	if err != nil {
		return err
	}
	defer f.Close()

	size := cfg.CanvasSize()
	canvas := export.Canvas{Width: size.Width, Height: size.Height, Background: cfg.BackgroundColor()}
	n, err := export.GIF(cmd.Context(), f, drv, canvas, export.GIFOptions{
		Frames: frames,
		Delay:  d,
		Dither: dither,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	logger.Info("gif written", "path", gifOut, "frames", n)
	return f.Close()
}

func runCoverage(cmd *cobra.Command, args []string) error {
	cfg, drv, _, err := setup(cmd)
	if err != nil {
		return err
	}

	m := drv.Matrix()
	stats, err := fractal.Sweep(cmd.Context(), m, *drv.Animation(), cfg.Palette(), cfg.Fractal.Workers)
	if err != nil {
		return err
	}
	report := export.NewReport(m.Width(), m.Height(), cfg.Fractal.MaxIterations, stats)

	if asJSON {
		return export.WriteJSON(cmd.OutOrStdout(), report)
	}

	data := report.Fractions()
	for i := range data {
		data[i] *= 100
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "grid: %dx%d\n", m.Width(), m.Height())
	fmt.Fprintf(out, "frames: %d\n\n", len(data))
	if len(data) < 2 {
		fmt.Fprintf(out, "inside: %.1f%%\n", data[0])
		return nil
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption("inside % per frame"))
	fmt.Fprintln(out, graph)
	return nil
}

func runCanvasSize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	minSize := raster.MinCanvasSize(cfg.MatrixConfig())
	size := cfg.CanvasSize()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "grid\t%dx%d cells\n", cfg.Raster.Width, cfg.Raster.Height)
	fmt.Fprintf(w, "minimum\t%dx%d\n", minSize.Width, minSize.Height)
	fmt.Fprintf(w, "canvas\t%dx%d\n", size.Width, size.Height)
	return w.Flush()
}

func runPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "presets:")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(out, "  %-10s %dx%d cells, max %d iterations\n", name, p.Raster.Width, p.Raster.Height, p.Fractal.MaxIterations)
	}
	return nil
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	path := "rastermatrix.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	slog.Info("config written", "path", path)
	return nil
}
