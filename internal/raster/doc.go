// Package raster provides a fixed-size grid of logical cells that is drawn
// onto an arbitrary surface with its own screen geometry.
//
// A [Matrix] separates two coordinate systems:
//
//   - cell coordinates: integer (x, y) addressing one slot of the buffer
//   - screen coordinates: the rectangle a cell occupies once cell size,
//     padding, margin and offset are applied
//
// The buffer stores [image/color.Color] values; a nil color marks an empty
// cell which [Matrix.Render] skips.
//
// # Example
//
//	m, _ := raster.New(raster.Config{
//		Width: 64, Height: 64,
//		CellSize: image.Pt(4, 4),
//		Padding:  &image.Point{X: 1, Y: 1},
//	})
//	m.CenterInRect(image.Rect(0, 0, 640, 480))
//	m.SetPixel(3, 4, color.White)
//	m.Render(surf, nil)
//
// # Thread Safety
//
// Matrix instances are NOT safe for concurrent use. One animation loop is
// expected to own and mutate a Matrix per frame.
package raster
