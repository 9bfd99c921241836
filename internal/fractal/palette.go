package fractal

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps escape counts to colors. Escaped points get a hue and
// lightness that grow with the iteration ratio; points that hit the cap get
// Inside.
type Palette struct {
	Inside     color.Color
	HueSpan    float64 // degrees covered as the ratio goes 0→1
	Saturation float64
	LightBase  float64
	LightSpan  float64
}

func DefaultPalette() Palette {
	return Palette{
		Inside:     color.RGBA{A: 0xff},
		HueSpan:    256,
		Saturation: 1,
		LightBase:  0.25,
		LightSpan:  0.5,
	}
}

// Color returns the color for a point that escaped after iter of at most max
// iterations.
func (p Palette) Color(iter, max int) color.Color {
	if iter >= max {
		return p.Inside
	}
	t := float64(iter) / float64(max)
	return colorful.Hsl(t*p.HueSpan, p.Saturation, p.LightBase+t*p.LightSpan).Clamped()
}
