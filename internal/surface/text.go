package surface

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/san-kum/rastermatrix/internal/raster"
)

// Align is the horizontal anchoring of text relative to its x coordinate.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "center"
	}
}

// ParseAlign accepts "left", "center" or "right"; empty means center.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(s) {
	case "", "center":
		return AlignCenter, nil
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	}
	return AlignCenter, fmt.Errorf("surface: unknown text alignment %q", s)
}

// anchor returns the fraction of the text width to shift left.
func (a Align) anchor() float64 {
	switch a {
	case AlignLeft:
		return 0
	case AlignRight:
		return 1
	default:
		return 0.5
	}
}

// Font selects the size and weight of overlay text. Surfaces map it to the
// closest face they have.
type Font struct {
	Size int
	Bold bool
}

var DefaultFont = Font{Size: 16}

// DefaultTextColor is used when TextOptions.Color is nil.
var DefaultTextColor color.Color = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}

// TextSurface is a Surface that can also draw text.
type TextSurface interface {
	raster.Surface
	SetFont(f Font)
	SetTextAlign(a Align)
	// FillText draws text with its baseline at y.
	FillText(text string, x, y int, c color.Color)
}

// TextOptions style a DrawText call. Zero fields take the defaults: gray,
// centered, 16px regular.
type TextOptions struct {
	Color color.Color
	Align Align
	Font  Font
}

// DrawText draws a single label on s.
func DrawText(s TextSurface, x, y int, text string, opts TextOptions) {
	font := opts.Font
	if font.Size <= 0 {
		font.Size = DefaultFont.Size
	}
	c := opts.Color
	if c == nil {
		c = DefaultTextColor
	}

	s.SetFont(font)
	s.SetTextAlign(opts.Align)
	s.FillText(text, x, y, c)
}
