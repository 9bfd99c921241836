package surface

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// hexColor returns c as #rrggbb. ok is false for nil or fully transparent
// colors.
func hexColor(c color.Color) (hex string, ok bool) {
	if c == nil {
		return "", false
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return "", false
	}
	return cc.Hex(), true
}

// opacity returns the alpha of c in [0, 1].
func opacity(c color.Color) float64 {
	_, _, _, a := c.RGBA()
	return float64(a) / 0xffff
}
