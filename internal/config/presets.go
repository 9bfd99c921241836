package config

import "sort"

// Presets are named starting points for common surfaces.
var Presets = map[string]func() *Config{
	// 256x256 cells of 2px with 1px gaps
	"demo": DefaultConfig,
	"terminal": func() *Config {
		cfg := DefaultConfig()
		cfg.Raster.Width, cfg.Raster.Height = 80, 48
		cfg.Raster.CellSize = Point{1, 1}
		cfg.Raster.Padding = Point{}
		cfg.Raster.Center = false
		cfg.Fractal.MaxIterations = 30
		cfg.Overlay.X, cfg.Overlay.Y = 1, 1
		cfg.FrameRate = 20
		return cfg
	},
	"braille": func() *Config {
		cfg := DefaultConfig()
		cfg.Raster.Width, cfg.Raster.Height = 160, 96
		cfg.Raster.CellSize = Point{1, 1}
		cfg.Raster.Padding = Point{}
		cfg.Raster.Center = false
		cfg.Fractal.MaxIterations = 30
		cfg.Overlay.Enabled = false
		cfg.FrameRate = 20
		return cfg
	},
	"poster": func() *Config {
		cfg := DefaultConfig()
		cfg.Raster.Width, cfg.Raster.Height = 512, 512
		cfg.Raster.CellSize = Point{2, 2}
		cfg.Raster.Padding = Point{}
		cfg.Raster.Margin = Point{16, 16}
		cfg.Fractal.MaxIterations = 200
		cfg.Overlay.Enabled = false
		return cfg
	},
	"chunky": func() *Config {
		cfg := DefaultConfig()
		cfg.Raster.Width, cfg.Raster.Height = 32, 32
		cfg.Raster.CellSize = Point{12, 12}
		cfg.Raster.Padding = Point{2, 2}
		cfg.Raster.Margin = Point{8, 8}
		cfg.Fractal.MaxIterations = 24
		cfg.FrameRate = 15
		return cfg
	},
}

// GetPreset returns a fresh copy of the named preset, or nil.
func GetPreset(name string) *Config {
	mk, ok := Presets[name]
	if !ok {
		return nil
	}
	return mk()
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
