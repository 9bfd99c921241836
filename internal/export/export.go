// Package export writes driver frames to files: PNG and SVG stills,
// animated GIFs and JSON coverage reports.
package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"
	"log/slog"

	xdraw "golang.org/x/image/draw"

	"github.com/san-kum/rastermatrix/internal/driver"
	"github.com/san-kum/rastermatrix/internal/surface"
)

// ErrEmptyCanvas is returned when the requested canvas has no area.
var ErrEmptyCanvas = errors.New("export: canvas width and height must be positive")

// Canvas is the output surface size and fill.
type Canvas struct {
	Width, Height int
	Background    color.Color
}

func (c Canvas) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrEmptyCanvas, c.Width, c.Height)
	}
	return nil
}

// frame steps drv once onto a fresh image surface.
func frame(ctx context.Context, drv *driver.Driver, c Canvas) (*surface.Image, error) {
	img := surface.NewImage(c.Width, c.Height)
	if c.Background != nil {
		img.Clear(c.Background)
	}
	if err := drv.Step(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

// PNG renders the driver's current frame and encodes it to w.
func PNG(ctx context.Context, w io.Writer, drv *driver.Driver, c Canvas) error {
	if err := c.validate(); err != nil {
		return err
	}
	img, err := frame(ctx, drv, c)
	if err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return img.EncodePNG(w)
}

// SVG renders the driver's current frame as an SVG document.
func SVG(ctx context.Context, w io.Writer, drv *driver.Driver, c Canvas) error {
	if err := c.validate(); err != nil {
		return err
	}
	s := surface.NewSVG(w, c.Width, c.Height, c.Background)
	if err := drv.Step(ctx, s); err != nil {
		return fmt.Errorf("render svg: %w", err)
	}
	s.Close()
	return nil
}

// GIFOptions controls animated output.
type GIFOptions struct {
	// Frames to record; <= 0 records one full up-and-down cycle.
	Frames int
	// Delay between frames in 100ths of a second.
	Delay  int
	Dither bool
	Logger *slog.Logger
}

// GIF records opts.Frames consecutive driver steps as a looping GIF and
// returns the number of frames written.
func GIF(ctx context.Context, w io.Writer, drv *driver.Driver, c Canvas, opts GIFOptions) (int, error) {
	if err := c.validate(); err != nil {
		return 0, err
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	n := opts.Frames
	if n <= 0 {
		n = max(drv.Animation().Period(), 1)
	}
	delay := max(opts.Delay, 1)

	bounds := image.Rect(0, 0, c.Width, c.Height)
	anim := gif.GIF{LoopCount: 0}
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		img, err := frame(ctx, drv, c)
		if err != nil {
			return 0, fmt.Errorf("render gif frame %d: %w", i, err)
		}

		pm := image.NewPaletted(bounds, palette.Plan9)
		if opts.Dither {
			xdraw.FloydSteinberg.Draw(pm, bounds, img.Image(), image.Point{})
		} else {
			xdraw.Draw(pm, bounds, img.Image(), image.Point{}, xdraw.Src)
		}
		anim.Image = append(anim.Image, pm)
		anim.Delay = append(anim.Delay, delay)

		opts.Logger.Debug("gif frame", "frame", i+1, "of", n, "cap", drv.Stats().MaxIterations)
	}

	if err := gif.EncodeAll(w, &anim); err != nil {
		return 0, fmt.Errorf("encode gif: %w", err)
	}
	return n, nil
}
