package raster

import (
	"fmt"
	"image"
	"image/color"
)

// Config describes the grid size and screen geometry of a Matrix.
// Nil Margin, Padding and Offset default to the zero point.
type Config struct {
	Width    int
	Height   int
	CellSize image.Point
	Margin   *image.Point
	Padding  *image.Point
	Offset   *image.Point
}

// Matrix is a row-major buffer of colors laid out as a grid of cells.
type Matrix struct {
	width, height int
	buffer        []color.Color

	cellSize image.Point
	margin   image.Point
	padding  image.Point
	offset   image.Point
}

// New allocates a Matrix with every cell empty. Geometry is copied, so
// later changes to the points referenced by cfg do not affect the Matrix.
func New(cfg Config) (*Matrix, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	if cfg.CellSize.X <= 0 || cfg.CellSize.Y <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidCellSize, cfg.CellSize)
	}

	return &Matrix{
		width:    cfg.Width,
		height:   cfg.Height,
		buffer:   make([]color.Color, cfg.Width*cfg.Height),
		cellSize: cfg.CellSize,
		margin:   pointOr(cfg.Margin, image.Point{}),
		padding:  pointOr(cfg.Padding, image.Point{}),
		offset:   pointOr(cfg.Offset, image.Point{}),
	}, nil
}

// MustNew is like New but panics on an invalid config.
func MustNew(cfg Config) *Matrix {
	m, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return m
}

func pointOr(p *image.Point, def image.Point) image.Point {
	if p == nil {
		return def
	}
	return *p
}

func (m *Matrix) Width() int  { return m.width }
func (m *Matrix) Height() int { return m.height }

// CellSize is the screen size of one cell.
func (m *Matrix) CellSize() image.Point { return m.cellSize }

// Margin is the space around the whole grid, applied on every side.
func (m *Matrix) Margin() image.Point { return m.margin }

// Padding is the gap between neighbouring cells.
func (m *Matrix) Padding() image.Point { return m.padding }

// Offset is the screen position of the grid's top-left corner.
func (m *Matrix) Offset() image.Point { return m.offset }

// CellRect returns the screen rectangle of cell (x, y). The second result
// is false for coordinates outside the grid.
func (m *Matrix) CellRect(x, y int) (image.Rectangle, bool) {
	if !m.inBounds(x, y) {
		return image.Rectangle{}, false
	}
	origin := m.cellOrigin(x, y)
	return image.Rectangle{Min: origin, Max: origin.Add(m.cellSize)}, true
}

// Bounds returns the screen rectangle covered by the whole grid including
// its margin.
func (m *Matrix) Bounds() image.Rectangle {
	return image.Rectangle{Min: m.offset, Max: m.offset.Add(m.TotalSize())}
}

func (m *Matrix) cellOrigin(x, y int) image.Point {
	return image.Point{
		X: m.offset.X + m.margin.X + x*(m.cellSize.X+m.padding.X),
		Y: m.offset.Y + m.margin.Y + y*(m.cellSize.Y+m.padding.Y),
	}
}

func (m *Matrix) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m *Matrix) validIndex(i int) bool {
	return i >= 0 && i < len(m.buffer)
}
