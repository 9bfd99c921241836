package surface

import (
	"image/color"
	"strings"
)

const brailleBlank = 0x2800

// Braille dot bits within one character cell, indexed [row][col]:
//
//	1 4
//	2 5
//	3 6
//	7 8
var brailleDots = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Braille is a monochrome surface of 2x4 dots per character. A filled pixel
// lights its dot when the color's gray level is above Threshold; darker
// fills clear it.
type Braille struct {
	Cols, Rows int
	Threshold  uint8
	grid       [][]rune
}

var _ TextSurface = (*Braille)(nil)

// NewBraille returns a blank canvas of cols×rows characters, which is
// (cols*2)×(rows*4) pixels.
func NewBraille(cols, rows int) *Braille {
	b := &Braille{Cols: cols, Rows: rows, grid: make([][]rune, rows)}
	for i := range b.grid {
		b.grid[i] = make([]rune, cols)
	}
	b.Clear()
	return b
}

// Clear resets every character to the blank pattern.
func (b *Braille) Clear() {
	for _, row := range b.grid {
		for j := range row {
			row[j] = brailleBlank
		}
	}
}

func (b *Braille) FillRect(x, y, w, h int, c color.Color) {
	lit := c != nil && color.GrayModel.Convert(c).(color.Gray).Y > b.Threshold
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			if lit {
				b.set(px, py)
			} else {
				b.unset(px, py)
			}
		}
	}
}

// Lit reports whether the dot at pixel (x, y) is set.
func (b *Braille) Lit(x, y int) bool {
	row, col, ok := b.cell(x, y)
	if !ok {
		return false
	}
	return b.grid[row][col]&brailleDots[y%4][x%2] != 0
}

// SetFont is a no-op.
func (b *Braille) SetFont(Font) {}

// SetTextAlign is a no-op.
func (b *Braille) SetTextAlign(Align) {}

// FillText is a no-op: every character cell is already a dot pattern.
func (b *Braille) FillText(string, int, int, color.Color) {}

func (b *Braille) String() string {
	var sb strings.Builder
	for i, row := range b.grid {
		sb.WriteString(string(row))
		if i < len(b.grid)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b *Braille) set(x, y int) {
	if row, col, ok := b.cell(x, y); ok {
		b.grid[row][col] |= brailleDots[y%4][x%2]
	}
}

func (b *Braille) unset(x, y int) {
	if row, col, ok := b.cell(x, y); ok {
		b.grid[row][col] &^= brailleDots[y%4][x%2]
	}
}

func (b *Braille) cell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/4, x/2
	if col >= b.Cols || row >= b.Rows {
		return 0, 0, false
	}
	return row, col, true
}
