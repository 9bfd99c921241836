package raster

import "image/color"

// Clear sets every cell to c. A nil c empties the grid.
func (m *Matrix) Clear(c color.Color) {
	for i := range m.buffer {
		m.buffer[i] = c
	}
}

// SetPixel sets cell (x, y). Out-of-bounds coordinates are ignored.
func (m *Matrix) SetPixel(x, y int, c color.Color) {
	if m.inBounds(x, y) {
		m.buffer[x+y*m.width] = c
	}
}

// SetPixelByIndex sets the cell at row-major index i. Indices outside
// [0, Width*Height) are ignored.
func (m *Matrix) SetPixelByIndex(i int, c color.Color) {
	if m.validIndex(i) {
		m.buffer[i] = c
	}
}

// SetPixels overwrites the buffer in row-major order with as many colors as
// both slices hold. Cells past len(colors) keep their value.
func (m *Matrix) SetPixels(colors []color.Color) {
	copy(m.buffer, colors)
}

// SetPixelBlock writes a bw×bh block of row-major colors with its top-left
// corner at cell (x, y). Parts of the block outside the grid are clipped.
// The call is a no-op when colors holds fewer than bw*bh values or the block
// does not overlap the grid.
func (m *Matrix) SetPixelBlock(x, y, bw, bh int, colors []color.Color) {
	// bw*bh may overflow; compare by division
	if bw <= 0 || bh <= 0 || bw > len(colors) || bh > len(colors)/bw {
		return
	}
	if x <= -bw || x >= m.width || y <= -bh || y >= m.height {
		return
	}

	// source offset of the first visible column/row
	sx, sy := max(0, -x), max(0, -y)
	dx, dy := max(0, x), max(0, y)
	w := min(x+bw, m.width) - dx
	h := min(y+bh, m.height) - dy

	for row := 0; row < h; row++ {
		dst := (dy+row)*m.width + dx
		src := (sy+row)*bw + sx
		copy(m.buffer[dst:dst+w], colors[src:src+w])
	}
}

// Pixel returns the color of cell (x, y), or nil when out of bounds.
func (m *Matrix) Pixel(x, y int) color.Color {
	if !m.inBounds(x, y) {
		return nil
	}
	return m.buffer[x+y*m.width]
}

// PixelByIndex returns the color at row-major index i, or nil when i is out
// of range.
func (m *Matrix) PixelByIndex(i int) color.Color {
	if !m.validIndex(i) {
		return nil
	}
	return m.buffer[i]
}

// Pixels returns a copy of the buffer the caller may modify freely.
func (m *Matrix) Pixels() []color.Color {
	out := make([]color.Color, len(m.buffer))
	copy(out, m.buffer)
	return out
}

// PixelBlock returns a row-major copy of the bw×bh block at (x, y).
//
// Unlike SetPixelBlock the read path does not clip: a block that is not
// fully inside the grid yields an empty result.
func (m *Matrix) PixelBlock(x, y, bw, bh int) []color.Color {
	if bw <= 0 || bh <= 0 {
		return nil
	}
	if x < 0 || x > m.width-bw || y < 0 || y > m.height-bh {
		return nil
	}

	out := make([]color.Color, 0, bw*bh)
	for row := y; row < y+bh; row++ {
		start := row*m.width + x
		out = append(out, m.buffer[start:start+bw]...)
	}
	return out
}

// PixelBuffer returns the live buffer without copying. Writes through it
// skip bounds checking; callers must not retain it beyond the Matrix's
// lifetime or change its length.
func (m *Matrix) PixelBuffer() []color.Color {
	return m.buffer
}
