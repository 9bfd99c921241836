package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/san-kum/rastermatrix/internal/fractal"
)

// FrameStats is one frame of a coverage report.
type FrameStats struct {
	Cap      int     `json:"cap"`
	Inside   int     `json:"inside"`
	Fraction float64 `json:"fraction"`
}

// Report summarizes a full animation cycle.
type Report struct {
	Width         int          `json:"width"`
	Height        int          `json:"height"`
	MaxIterations int          `json:"max_iterations"`
	Frames        []FrameStats `json:"frames"`
}

// NewReport builds a report from the stats returned by fractal.Sweep.
func NewReport(width, height, maxIterations int, stats []fractal.Stats) Report {
	r := Report{
		Width:         width,
		Height:        height,
		MaxIterations: maxIterations,
		Frames:        make([]FrameStats, len(stats)),
	}
	for i, s := range stats {
		r.Frames[i] = FrameStats{Cap: s.MaxIterations, Inside: s.Inside, Fraction: s.InsideFraction()}
	}
	return r
}

// Fractions returns the per-frame inside fractions in order.
func (r Report) Fractions() []float64 {
	out := make([]float64, len(r.Frames))
	for i, f := range r.Frames {
		out[i] = f.Fraction
	}
	return out
}

// WriteJSON encodes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
