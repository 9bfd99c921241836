package fractal

import (
	"context"
	"fmt"
	"image/color"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/rastermatrix/internal/raster"
)

// Stats summarizes one computed frame.
type Stats struct {
	MaxIterations int
	Inside        int
	Total         int
}

// InsideFraction is the share of cells that never escaped.
func (s Stats) InsideFraction() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Inside) / float64(s.Total)
}

// Compute colors every cell of m for an iteration cap of maxIter.
//
// Rows are split across up to workers goroutines writing into a scratch
// buffer; m is written only from the calling goroutine once all rows are
// done. workers <= 0 uses GOMAXPROCS.
func Compute(ctx context.Context, m *raster.Matrix, maxIter int, p Palette, workers int) (Stats, error) {
	w, h := m.Width(), m.Height()
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	frame := make([]color.Color, w*h)
	inside := make([]int, h)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := 0; y < h; y++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := frame[y*w : (y+1)*w]
			for x := range row {
				re, im := PlanePoint(x, y, w, h)
				iter := Escape(re, im, maxIter)
				if iter >= maxIter {
					inside[y]++
				}
				row[x] = p.Color(iter, maxIter)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, fmt.Errorf("compute frame (cap %d): %w", maxIter, err)
	}

	m.SetPixels(frame)

	stats := Stats{MaxIterations: maxIter, Total: w * h}
	for _, n := range inside {
		stats.Inside += n
	}
	return stats, nil
}

// Sweep computes one full animation cycle starting from a copy of anim and
// returns the per-frame stats. anim itself is not advanced.
func Sweep(ctx context.Context, m *raster.Matrix, anim Animation, p Palette, workers int) ([]Stats, error) {
	frames := max(anim.Period(), 1)
	out := make([]Stats, 0, frames)
	for i := 0; i < frames; i++ {
		stats, err := Compute(ctx, m, anim.Iterations, p, workers)
		if err != nil {
			return out, err
		}
		out = append(out, stats)
		anim.Advance()
	}
	return out, nil
}
