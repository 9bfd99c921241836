package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/san-kum/rastermatrix/internal/viz"
)

var (
	configFile string
	preset     string
	verbose    bool
	workers    int
	maxIter    int
	renderOut  string
	skip       int
	gifOut     string
	frames     int
	delay      int
	dither     bool
	mode       string
	theme      string
	format     string
	showHUD    bool
	asJSON     bool
)

// main registers the CLI commands and runs the selected one. With no
// subcommand it starts the terminal view.
func main() {
	log.SetFlags(0)

	rootCmd := &cobra.Command{
		Use:           "rastermatrix",
		Short:         "animated Mandelbrot on a colour-cell grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runLive,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "row workers per frame (0 = config or GOMAXPROCS)")
	rootCmd.PersistentFlags().IntVar(&maxIter, "max-iter", 0, "iteration ceiling (0 = config)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&mode, "mode", "color", "terminal mode: color or braille")
	liveCmd.Flags().StringVar(&theme, "theme", "", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	rootCmd.Flags().AddFlagSet(liveCmd.Flags())

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "animate in a desktop window",
		RunE:  runWindow,
	}
	windowCmd.Flags().BoolVar(&showHUD, "hud", true, "show status line")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render one frame to PNG or SVG",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "frame.png", "output file")
	renderCmd.Flags().StringVar(&format, "format", "", "png or svg (default from extension)")
	renderCmd.Flags().IntVar(&skip, "skip", 0, "frames to step before rendering")

	gifCmd := &cobra.Command{
		Use:   "gif",
		Short: "record an animated GIF",
		RunE:  runGIF,
	}
	gifCmd.Flags().StringVarP(&gifOut, "output", "o", "rastermatrix.gif", "output file")
	gifCmd.Flags().IntVar(&frames, "frames", 0, "frames to record (0 = one full cycle)")
	gifCmd.Flags().IntVar(&delay, "delay", 0, "frame delay in 1/100 s (0 = from frame rate)")
	gifCmd.Flags().BoolVar(&dither, "dither", false, "Floyd-Steinberg dithering")

	coverageCmd := &cobra.Command{
		Use:   "coverage",
		Short: "plot the inside fraction over one animation cycle",
		RunE:  runCoverage,
	}
	coverageCmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON report instead of a graph")

	canvasCmd := &cobra.Command{
		Use:   "canvas-size",
		Short: "print the minimum canvas size for the grid",
		RunE:  runCanvasSize,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  runPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInitConfig,
	}

	rootCmd.AddCommand(liveCmd, windowCmd, renderCmd, gifCmd, coverageCmd, canvasCmd, presetsCmd, initCmd)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cobra.OnInitialize(setupLogging)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		cancel()
		os.Exit(1)
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logHandler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05 PM",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})
	slog.SetDefault(slog.New(logHandler))
}
