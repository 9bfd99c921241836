package surface

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// upperHalf paints the top pixel as foreground and the bottom one as
// background, so each terminal cell shows two vertically stacked pixels.
// lowerHalf covers cells whose top pixel is empty.
const (
	upperHalf = "▀"
	lowerHalf = "▄"
)

type textCell struct {
	r rune
	c color.Color
}

// Terminal is a pixel surface rendered as colored half-block characters.
// One pixel maps to one column and half a row.
type Terminal struct {
	width, height int
	pix           []color.Color
	text          map[int]textCell
	align         Align
	styles        map[[2]string]lipgloss.Style
}

var _ TextSurface = (*Terminal)(nil)

// NewTerminal returns a surface of w×h pixels. An odd height is rounded up.
func NewTerminal(w, h int) *Terminal {
	h += h % 2
	return &Terminal{
		width:  w,
		height: h,
		pix:    make([]color.Color, w*h),
		text:   make(map[int]textCell),
		styles: make(map[[2]string]lipgloss.Style),
	}
}

func (t *Terminal) Width() int  { return t.width }
func (t *Terminal) Height() int { return t.height }

// Rows is the number of text lines String produces.
func (t *Terminal) Rows() int { return t.height / 2 }

// Clear drops all pixels and text.
func (t *Terminal) Clear() {
	for i := range t.pix {
		t.pix[i] = nil
	}
	clear(t.text)
}

func (t *Terminal) FillRect(x, y, w, h int, c color.Color) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, t.width), min(y+h, t.height)
	for py := y0; py < y1; py++ {
		row := t.pix[py*t.width : (py+1)*t.width]
		for px := x0; px < x1; px++ {
			row[px] = c
		}
	}
}

// At returns the pixel at (x, y), nil if never drawn or out of range.
func (t *Terminal) At(x, y int) color.Color {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return nil
	}
	return t.pix[y*t.width+x]
}

// SetFont is a no-op: terminals have a single face.
func (t *Terminal) SetFont(Font) {}

func (t *Terminal) SetTextAlign(a Align) {
	t.align = a
}

// FillText places text on the terminal row containing pixel row y.
func (t *Terminal) FillText(text string, x, y int, c color.Color) {
	row := y / 2
	if y < 0 || row >= t.Rows() {
		return
	}
	runes := []rune(text)
	start := x - int(float64(len(runes))*t.align.anchor())
	for i, r := range runes {
		col := start + i
		if col < 0 || col >= t.width {
			continue
		}
		t.text[row*t.width+col] = textCell{r: r, c: c}
	}
}

// String renders the surface, one line per pair of pixel rows.
func (t *Terminal) String() string {
	var b strings.Builder
	for row := 0; row < t.Rows(); row++ {
		for col := 0; col < t.width; col++ {
			top := t.pix[2*row*t.width+col]
			bottom := t.pix[(2*row+1)*t.width+col]
			if tc, ok := t.text[row*t.width+col]; ok {
				b.WriteString(t.style(tc.c, bottom).Render(string(tc.r)))
				continue
			}
			switch {
			case top == nil && bottom == nil:
				b.WriteByte(' ')
				continue
			case top == nil:
				b.WriteString(t.style(bottom, nil).Render(lowerHalf))
				continue
			}
			b.WriteString(t.style(top, bottom).Render(upperHalf))
		}
		if row < t.Rows()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (t *Terminal) style(fg, bg color.Color) lipgloss.Style {
	fgHex, _ := hexColor(fg)
	bgHex, _ := hexColor(bg)
	key := [2]string{fgHex, bgHex}
	if st, ok := t.styles[key]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if fgHex != "" {
		st = st.Foreground(lipgloss.Color(fgHex))
	}
	if bgHex != "" {
		st = st.Background(lipgloss.Color(bgHex))
	}
	t.styles[key] = st
	return st
}
