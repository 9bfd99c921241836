package raster

import "image/color"

// Surface is a drawing target able to fill axis-aligned rectangles.
type Surface interface {
	FillRect(x, y, w, h int, c color.Color)
}

// DrawFunc draws one non-empty cell whose screen rectangle starts at (x, y)
// and spans w×h.
type DrawFunc func(s Surface, x, y, w, h int, c color.Color)

// FillCell is the default DrawFunc: a solid rectangle of the cell's color.
func FillCell(s Surface, x, y, w, h int, c color.Color) {
	s.FillRect(x, y, w, h, c)
}

// Render walks the grid in row-major order and calls draw for every
// non-empty cell. A nil draw uses FillCell. Empty cells leave the surface
// untouched.
func (m *Matrix) Render(s Surface, draw DrawFunc) {
	if draw == nil {
		draw = FillCell
	}

	stepX := m.cellSize.X + m.padding.X
	stepY := m.cellSize.Y + m.padding.Y
	originX := m.offset.X + m.margin.X
	originY := m.offset.Y + m.margin.Y

	for yi := 0; yi < m.height; yi++ {
		y := originY + yi*stepY
		row := m.buffer[yi*m.width : (yi+1)*m.width]
		for xi, c := range row {
			if c == nil {
				continue
			}
			draw(s, originX+xi*stepX, y, m.cellSize.X, m.cellSize.Y, c)
		}
	}
}
