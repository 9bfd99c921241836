// Package driver runs the per-frame loop that feeds a raster.Matrix with
// Mandelbrot frames and draws them onto a surface.
package driver

import (
	"context"
	"image"
	"log/slog"
	"strconv"

	"github.com/san-kum/rastermatrix/internal/fractal"
	"github.com/san-kum/rastermatrix/internal/raster"
	"github.com/san-kum/rastermatrix/internal/surface"
)

// Overlay positions the iteration-cap label.
type Overlay struct {
	Enabled bool
	Pos     image.Point
	Text    surface.TextOptions
}

// Options configures a Driver.
type Options struct {
	Palette fractal.Palette
	Overlay Overlay
	// Workers bounds per-frame row parallelism; <= 0 uses GOMAXPROCS.
	Workers int
	Logger  *slog.Logger
}

// Driver owns one Matrix and the animation state that drives it. It is not
// safe for concurrent use.
type Driver struct {
	matrix *raster.Matrix
	anim   *fractal.Animation
	opts   Options
	last   fractal.Stats
	frames int
}

// New returns a Driver animating m with a cap ping-ponging up to
// maxIterations.
func New(m *raster.Matrix, maxIterations int, opts Options) *Driver {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Driver{
		matrix: m,
		anim:   fractal.NewAnimation(maxIterations),
		opts:   opts,
	}
}

func (d *Driver) Matrix() *raster.Matrix        { return d.matrix }
func (d *Driver) Animation() *fractal.Animation { return d.anim }

// Stats returns the stats of the most recent frame.
func (d *Driver) Stats() fractal.Stats { return d.last }

// Frames is the number of frames stepped so far.
func (d *Driver) Frames() int { return d.frames }

// Step produces one frame: it clears the matrix, computes the current cap,
// renders onto s, draws the overlay when s supports text, then advances the
// cap.
func (d *Driver) Step(ctx context.Context, s raster.Surface) error {
	d.matrix.Clear(nil)

	limit := d.anim.Iterations
	stats, err := fractal.Compute(ctx, d.matrix, limit, d.opts.Palette, d.opts.Workers)
	if err != nil {
		return err
	}
	d.last = stats

	d.matrix.Render(s, nil)
	d.drawOverlay(s, limit)

	d.anim.Advance()
	d.frames++

	d.opts.Logger.Debug("frame rendered",
		"frame", d.frames,
		"cap", limit,
		"inside", stats.Inside)
	return nil
}

// Reset rewinds the animation to a cap of zero.
func (d *Driver) Reset() {
	d.anim.Reset()
	d.frames = 0
	d.last = fractal.Stats{}
}

func (d *Driver) drawOverlay(s raster.Surface, limit int) {
	if !d.opts.Overlay.Enabled {
		return
	}
	ts, ok := s.(surface.TextSurface)
	if !ok {
		return
	}
	surface.DrawText(ts, d.opts.Overlay.Pos.X, d.opts.Overlay.Pos.Y, strconv.Itoa(limit), d.opts.Overlay.Text)
}
