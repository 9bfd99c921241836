package raster_test

import (
	"image"
	"image/color"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rastermatrix/internal/raster"
)

// gray builds distinct, comparable colors for buffer assertions.
func gray(v uint8) color.Color { return color.Gray{Y: v} }

func grays(vs ...uint8) []color.Color {
	out := make([]color.Color, len(vs))
	for i, v := range vs {
		out[i] = gray(v)
	}
	return out
}

func newMatrix(w, h int) *raster.Matrix {
	return raster.MustNew(raster.Config{Width: w, Height: h, CellSize: image.Pt(10, 10)})
}

var _ = Describe("New", func() {
	It("allocates an empty buffer of width*height cells", func() {
		m := newMatrix(3, 2)
		Expect(m.Width()).To(Equal(3))
		Expect(m.Height()).To(Equal(2))
		Expect(m.Pixels()).To(HaveLen(6))
		for _, c := range m.Pixels() {
			Expect(c).To(BeNil())
		}
	})

	It("defaults optional geometry to zero", func() {
		m := newMatrix(1, 1)
		Expect(m.Margin()).To(Equal(image.Point{}))
		Expect(m.Padding()).To(Equal(image.Point{}))
		Expect(m.Offset()).To(Equal(image.Point{}))
	})

	It("copies geometry from the config", func() {
		pad := image.Pt(1, 2)
		cfg := raster.Config{Width: 2, Height: 2, CellSize: image.Pt(4, 4), Padding: &pad}
		m := raster.MustNew(cfg)

		pad.X = 99
		cfg.CellSize.X = 99
		Expect(m.Padding()).To(Equal(image.Pt(1, 2)))
		Expect(m.CellSize()).To(Equal(image.Pt(4, 4)))
	})

	DescribeTable("rejects invalid configs",
		func(cfg raster.Config, want error) {
			m, err := raster.New(cfg)
			Expect(err).To(MatchError(want))
			Expect(m).To(BeNil())
		},
		Entry("zero width", raster.Config{Width: 0, Height: 2, CellSize: image.Pt(1, 1)}, raster.ErrInvalidDimensions),
		Entry("negative height", raster.Config{Width: 2, Height: -1, CellSize: image.Pt(1, 1)}, raster.ErrInvalidDimensions),
		Entry("zero cell width", raster.Config{Width: 2, Height: 2, CellSize: image.Pt(0, 1)}, raster.ErrInvalidCellSize),
		Entry("negative cell height", raster.Config{Width: 2, Height: 2, CellSize: image.Pt(1, -3)}, raster.ErrInvalidCellSize),
	)

	It("panics in MustNew on invalid config", func() {
		Expect(func() { raster.MustNew(raster.Config{}) }).To(Panic())
	})
})

var _ = Describe("CellRect", func() {
	It("applies offset, margin, cell size and padding", func() {
		m := raster.MustNew(raster.Config{
			Width: 4, Height: 3,
			CellSize: image.Pt(5, 6),
			Margin:   &image.Point{X: 2, Y: 3},
			Padding:  &image.Point{X: 1, Y: 2},
			Offset:   &image.Point{X: 10, Y: 20},
		})

		r, ok := m.CellRect(2, 1)
		Expect(ok).To(BeTrue())
		Expect(r).To(Equal(image.Rect(10+2+2*6, 20+3+1*8, 10+2+2*6+5, 20+3+1*8+6)))
	})

	It("reports out-of-bounds cells", func() {
		m := newMatrix(2, 2)
		_, ok := m.CellRect(2, 0)
		Expect(ok).To(BeFalse())
		_, ok = m.CellRect(0, -1)
		Expect(ok).To(BeFalse())
	})
})
