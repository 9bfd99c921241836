package raster_test

import (
	"image"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rastermatrix/internal/raster"
)

var _ = Describe("Layout", func() {
	padded := func(w, h int) *raster.Matrix {
		return raster.MustNew(raster.Config{
			Width: w, Height: h,
			CellSize: image.Pt(10, 10),
			Padding:  &image.Point{X: 1, Y: 1},
		})
	}

	Describe("TotalSize", func() {
		It("counts padding between cells and margin on both sides", func() {
			m := raster.MustNew(raster.Config{
				Width: 3, Height: 2,
				CellSize: image.Pt(4, 5),
				Padding:  &image.Point{X: 2, Y: 1},
				Margin:   &image.Point{X: 3, Y: 7},
			})
			Expect(m.TotalSize()).To(Equal(image.Pt(3*4+2*2+2*3, 2*5+1*1+2*7)))
		})
	})

	Describe("CenterInRect", func() {
		It("floors the leftover space", func() {
			m := padded(2, 2)
			Expect(m.TotalSize()).To(Equal(image.Pt(21, 21)))
			m.CenterInRect(image.Rect(0, 0, 100, 100))
			Expect(m.Offset()).To(Equal(image.Pt(39, 39)))
		})

		It("is relative to the rectangle origin", func() {
			m := padded(2, 2)
			m.CenterInRect(image.Rect(10, 20, 110, 60))
			Expect(m.Offset()).To(Equal(image.Pt(10+39, 20+9)))
		})

		It("floors toward negative infinity when the grid is larger", func() {
			m := padded(2, 2)
			m.CenterInRect(image.Rect(0, 0, 10, 20))
			Expect(m.Offset()).To(Equal(image.Pt(-6, -1)))
		})

		It("moves the rendered cells", func() {
			m := padded(2, 2)
			m.CenterInRect(image.Rect(0, 0, 100, 100))
			r, _ := m.CellRect(1, 1)
			Expect(r.Min).To(Equal(image.Pt(39+11, 39+11)))
			Expect(m.Bounds()).To(Equal(image.Rect(39, 39, 60, 60)))
		})
	})

	Describe("SetOffset", func() {
		It("replaces the offset", func() {
			m := padded(1, 1)
			m.SetOffset(image.Pt(-5, 8))
			Expect(m.Offset()).To(Equal(image.Pt(-5, 8)))
		})
	})

	Describe("MinCanvasSize", func() {
		It("defaults padding to one unit", func() {
			size := raster.MinCanvasSize(raster.Config{Width: 3, Height: 2, CellSize: image.Pt(10, 10)})
			Expect(size).To(Equal(raster.Size{Width: 32, Height: 21}))
		})

		It("adds margin and offset", func() {
			size := raster.MinCanvasSize(raster.Config{
				Width: 3, Height: 2,
				CellSize: image.Pt(10, 10),
				Padding:  &image.Point{},
				Margin:   &image.Point{X: 2, Y: 3},
				Offset:   &image.Point{X: 5, Y: 1},
			})
			Expect(size).To(Equal(raster.Size{Width: 30 + 4 + 5, Height: 20 + 6 + 1}))
		})

		It("matches Bounds of a Matrix built from the same config", func() {
			cfg := raster.Config{
				Width: 7, Height: 5,
				CellSize: image.Pt(3, 2),
				Padding:  &image.Point{X: 1, Y: 1},
				Margin:   &image.Point{X: 2, Y: 2},
				Offset:   &image.Point{X: 4, Y: 6},
			}
			size := raster.MinCanvasSize(cfg)
			Expect(raster.MustNew(cfg).Bounds().Max).To(Equal(image.Pt(size.Width, size.Height)))
		})
	})
})
