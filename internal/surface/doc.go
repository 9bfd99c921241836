// Package surface provides drawing targets for [raster.Matrix.Render].
//
// Every surface implements [raster.Surface]. Surfaces that can also draw an
// overlay label implement [TextSurface]:
//
//   - [Image]: software RGBA bitmap backed by gg, encodable as PNG
//   - [Terminal]: truecolor half-block rendering for terminals
//   - [SVG]: streams one <rect> per filled cell
//   - [Braille]: monochrome 2x4 dot canvas (no text)
package surface
