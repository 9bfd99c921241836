package raster

import "image"

// Size is a width/height pair in screen units.
type Size struct {
	Width  int
	Height int
}

// SetOffset places the grid's top-left corner at p.
func (m *Matrix) SetOffset(p image.Point) {
	m.offset = p
}

// CenterInRect moves the grid so that its total size is centered inside r.
// Odd leftovers are floored so the grid stays aligned to whole pixels.
func (m *Matrix) CenterInRect(r image.Rectangle) {
	total := m.TotalSize()
	size := r.Size()
	m.offset = image.Point{
		X: r.Min.X + floorDiv(size.X-total.X, 2),
		Y: r.Min.Y + floorDiv(size.Y-total.Y, 2),
	}
}

// TotalSize returns the screen size the grid occupies, margins included.
func (m *Matrix) TotalSize() image.Point {
	return totalSize(m.width, m.height, m.cellSize, m.padding, m.margin)
}

// MinCanvasSize returns the smallest surface that shows a Matrix built from
// cfg without clipping. Unset padding counts as one unit per axis; unset
// margin and offset count as zero.
func MinCanvasSize(cfg Config) Size {
	padding := pointOr(cfg.Padding, image.Point{X: 1, Y: 1})
	margin := pointOr(cfg.Margin, image.Point{})
	offset := pointOr(cfg.Offset, image.Point{})

	total := totalSize(cfg.Width, cfg.Height, cfg.CellSize, padding, margin)
	return Size{
		Width:  total.X + offset.X,
		Height: total.Y + offset.Y,
	}
}

func totalSize(w, h int, cell, padding, margin image.Point) image.Point {
	return image.Point{
		X: w*cell.X + (w-1)*padding.X + 2*margin.X,
		Y: h*cell.Y + (h-1)*padding.Y + 2*margin.Y,
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
