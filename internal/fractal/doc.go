// Package fractal computes escape-time Mandelbrot frames into a
// [raster.Matrix].
//
//   - [Escape]: iteration count of z ← z² + c before |z|² reaches 4
//   - [Animation]: iteration cap that ping-pongs between 0 and a ceiling
//   - [Palette]: maps an iteration count to a color
//   - [Compute]: fills a Matrix with one colored frame
//
// The complex plane window is re, im ∈ [-2, 2) scaled by the grid width,
// so non-square grids keep a 1:1 aspect ratio.
package fractal
