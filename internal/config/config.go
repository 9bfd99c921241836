package config

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/rastermatrix/internal/fractal"
	"github.com/san-kum/rastermatrix/internal/raster"
	"github.com/san-kum/rastermatrix/internal/surface"
)

const (
	DefaultGridSize      = 256
	DefaultCellSize      = 2
	DefaultPadding       = 1
	DefaultMaxIterations = 50
	DefaultFrameRate     = 60
	DefaultBackground    = "#404060"
	DefaultInsideColor   = "#000000"
	DefaultOverlayColor  = "#ffff00"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Raster     RasterConfig  `yaml:"raster"`
	Canvas     CanvasConfig  `yaml:"canvas"`
	Fractal    FractalConfig `yaml:"fractal"`
	Overlay    OverlayConfig `yaml:"overlay"`
	FrameRate  int           `yaml:"frame_rate"`
	Background string        `yaml:"background"`
	Theme      string        `yaml:"theme"`
}

type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (p Point) ptr() *image.Point { return &image.Point{X: p.X, Y: p.Y} }

type RasterConfig struct {
	Width    int   `yaml:"width"`
	Height   int   `yaml:"height"`
	CellSize Point `yaml:"cell_size"`
	Margin   Point `yaml:"margin"`
	Padding  Point `yaml:"padding"`
	Offset   Point `yaml:"offset"`
	// Center places the grid in the middle of the canvas, overriding Offset.
	Center bool `yaml:"center"`
}

// CanvasConfig is the drawing surface size in pixels. Zero means "just big
// enough for the grid".
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type FractalConfig struct {
	MaxIterations int    `yaml:"max_iterations"`
	InsideColor   string `yaml:"inside_color"`
	Workers       int    `yaml:"workers"`
}

type OverlayConfig struct {
	Enabled bool   `yaml:"enabled"`
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Color   string `yaml:"color"`
	Align   string `yaml:"align"`
	Size    int    `yaml:"size"`
	Bold    bool   `yaml:"bold"`
}

func DefaultConfig() *Config {
	return &Config{
		Raster: RasterConfig{
			Width:    DefaultGridSize,
			Height:   DefaultGridSize,
			CellSize: Point{DefaultCellSize, DefaultCellSize},
			Padding:  Point{DefaultPadding, DefaultPadding},
			Center:   true,
		},
		Fractal: FractalConfig{
			MaxIterations: DefaultMaxIterations,
			InsideColor:   DefaultInsideColor,
		},
		Overlay: OverlayConfig{
			Enabled: true,
			X:       10,
			Y:       25,
			Color:   DefaultOverlayColor,
			Align:   "left",
			Size:    20,
			Bold:    true,
		},
		FrameRate:  DefaultFrameRate,
		Background: DefaultBackground,
		Theme:      "cyberpunk",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks ranges and color syntax.
func (c *Config) Validate() error {
	r := c.Raster
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("%w: raster size %dx%d", ErrInvalidConfig, r.Width, r.Height)
	case r.CellSize.X <= 0 || r.CellSize.Y <= 0:
		return fmt.Errorf("%w: cell size %dx%d", ErrInvalidConfig, r.CellSize.X, r.CellSize.Y)
	case r.Padding.X < 0 || r.Padding.Y < 0 || r.Margin.X < 0 || r.Margin.Y < 0:
		return fmt.Errorf("%w: negative padding or margin", ErrInvalidConfig)
	case c.Canvas.Width < 0 || c.Canvas.Height < 0:
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	case c.Fractal.MaxIterations < 0:
		return fmt.Errorf("%w: max_iterations %d", ErrInvalidConfig, c.Fractal.MaxIterations)
	case c.FrameRate <= 0:
		return fmt.Errorf("%w: frame_rate %d", ErrInvalidConfig, c.FrameRate)
	}

	for name, hex := range map[string]string{
		"background":           c.Background,
		"fractal.inside_color": c.Fractal.InsideColor,
		"overlay.color":        c.Overlay.Color,
	} {
		if hex == "" {
			continue
		}
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%w: %s %q: %v", ErrInvalidConfig, name, hex, err)
		}
	}
	if _, err := surface.ParseAlign(c.Overlay.Align); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// MatrixConfig converts the raster section.
func (c *Config) MatrixConfig() raster.Config {
	r := c.Raster
	return raster.Config{
		Width:    r.Width,
		Height:   r.Height,
		CellSize: image.Pt(r.CellSize.X, r.CellSize.Y),
		Margin:   r.Margin.ptr(),
		Padding:  r.Padding.ptr(),
		Offset:   r.Offset.ptr(),
	}
}

// CanvasSize returns the configured canvas, growing any zero dimension to
// the minimum the grid needs.
func (c *Config) CanvasSize() raster.Size {
	need := raster.MinCanvasSize(c.MatrixConfig())
	size := raster.Size{Width: c.Canvas.Width, Height: c.Canvas.Height}
	if size.Width == 0 {
		size.Width = need.Width
	}
	if size.Height == 0 {
		size.Height = need.Height
	}
	return size
}

// NewMatrix builds the Matrix and, if requested, centers it in the canvas.
func (c *Config) NewMatrix() (*raster.Matrix, error) {
	m, err := raster.New(c.MatrixConfig())
	if err != nil {
		return nil, err
	}
	if c.Raster.Center {
		size := c.CanvasSize()
		m.CenterInRect(image.Rect(0, 0, size.Width, size.Height))
	}
	return m, nil
}

func (c *Config) Palette() fractal.Palette {
	p := fractal.DefaultPalette()
	if col := parseColor(c.Fractal.InsideColor); col != nil {
		p.Inside = col
	}
	return p
}

func (c *Config) BackgroundColor() color.Color {
	return parseColor(c.Background)
}

func (c *Config) OverlayText() surface.TextOptions {
	align, _ := surface.ParseAlign(c.Overlay.Align)
	return surface.TextOptions{
		Color: parseColor(c.Overlay.Color),
		Align: align,
		Font:  surface.Font{Size: c.Overlay.Size, Bold: c.Overlay.Bold},
	}
}

// parseColor returns nil for empty or malformed hex strings; Validate
// reports the malformed ones.
func parseColor(hex string) color.Color {
	if hex == "" {
		return nil
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return nil
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
