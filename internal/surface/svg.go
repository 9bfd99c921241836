package surface

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// SVG streams drawing calls as SVG elements to a writer. Close must be
// called to finish the document.
type SVG struct {
	canvas *svg.SVG
	font   Font
	align  Align
}

var _ TextSurface = (*SVG)(nil)

// NewSVG starts a width×height document on w. A non-nil bg paints the
// whole canvas first.
func NewSVG(w io.Writer, width, height int, bg color.Color) *SVG {
	canvas := svg.New(w)
	canvas.Startview(width, height, 0, 0, width, height)
	s := &SVG{canvas: canvas, font: DefaultFont}
	if bg != nil {
		s.FillRect(0, 0, width, height, bg)
	}
	return s
}

func (s *SVG) FillRect(x, y, w, h int, c color.Color) {
	style, ok := fillStyle(c)
	if !ok {
		return
	}
	s.canvas.Rect(x, y, w, h, style)
}

func (s *SVG) SetFont(f Font) {
	s.font = f
}

func (s *SVG) SetTextAlign(a Align) {
	s.align = a
}

func (s *SVG) FillText(text string, x, y int, c color.Color) {
	style, ok := fillStyle(c)
	if !ok {
		return
	}
	parts := []string{
		style,
		fmt.Sprintf("font-size:%dpx", s.font.Size),
		"font-family:monospace",
		"text-anchor:" + textAnchor(s.align),
	}
	if s.font.Bold {
		parts = append(parts, "font-weight:bold")
	}
	s.canvas.Text(x, y, text, strings.Join(parts, ";"))
}

// Close ends the document.
func (s *SVG) Close() {
	s.canvas.End()
}

func fillStyle(c color.Color) (string, bool) {
	hex, ok := hexColor(c)
	if !ok {
		return "", false
	}
	if a := opacity(c); a < 1 {
		return fmt.Sprintf("fill:%s;fill-opacity:%.3f", hex, a), true
	}
	return "fill:" + hex, true
}

func textAnchor(a Align) string {
	switch a {
	case AlignLeft:
		return "start"
	case AlignRight:
		return "end"
	default:
		return "middle"
	}
}
