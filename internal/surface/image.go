package surface

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
)

// Image is an in-memory RGBA surface.
type Image struct {
	dc    *gg.Context
	align Align
}

var _ TextSurface = (*Image)(nil)

// NewImage returns a transparent w×h surface.
func NewImage(w, h int) *Image {
	dc := gg.NewContext(w, h)
	dc.SetFontFace(faceFor(DefaultFont))
	return &Image{dc: dc}
}

func (s *Image) Width() int  { return s.dc.Width() }
func (s *Image) Height() int { return s.dc.Height() }

// Clear fills the whole surface with bg.
func (s *Image) Clear(bg color.Color) {
	s.dc.SetColor(bg)
	s.dc.Clear()
}

func (s *Image) FillRect(x, y, w, h int, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	s.dc.Fill()
}

func (s *Image) SetFont(f Font) {
	s.dc.SetFontFace(faceFor(f))
}

func (s *Image) SetTextAlign(a Align) {
	s.align = a
}

func (s *Image) FillText(text string, x, y int, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawStringAnchored(text, float64(x), float64(y), s.align.anchor(), 0)
}

// Image returns the backing image. It aliases the surface.
func (s *Image) Image() image.Image {
	return s.dc.Image()
}

// At returns the color of one screen pixel.
func (s *Image) At(x, y int) color.Color {
	return s.dc.Image().At(x, y)
}

func (s *Image) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// faceFor maps a Font onto the bitmap faces shipped with x/image.
func faceFor(f Font) font.Face {
	switch {
	case f.Bold:
		return inconsolata.Bold8x16
	case f.Size >= 16:
		return inconsolata.Regular8x16
	default:
		return basicfont.Face7x13
	}
}
