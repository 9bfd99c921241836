package raster_test

import (
	"image"
	"image/color"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rastermatrix/internal/raster"
)

type fillCall struct {
	X, Y, W, H int
	C          color.Color
}

type recordingSurface struct {
	calls []fillCall
}

func (s *recordingSurface) FillRect(x, y, w, h int, c color.Color) {
	s.calls = append(s.calls, fillCall{x, y, w, h, c})
}

var _ = Describe("Render", func() {
	var (
		m    *raster.Matrix
		surf *recordingSurface
	)

	BeforeEach(func() {
		m = raster.MustNew(raster.Config{
			Width: 3, Height: 2,
			CellSize: image.Pt(4, 3),
			Padding:  &image.Point{X: 1, Y: 2},
			Margin:   &image.Point{X: 5, Y: 6},
			Offset:   &image.Point{X: 100, Y: 200},
		})
		surf = &recordingSurface{}
	})

	It("draws nothing for an empty grid", func() {
		m.Render(surf, nil)
		Expect(surf.calls).To(BeEmpty())
	})

	It("fills non-empty cells in row-major order at their screen position", func() {
		m.SetPixel(2, 0, gray(1))
		m.SetPixel(0, 1, gray(2))
		m.SetPixel(1, 1, gray(3))

		m.Render(surf, nil)

		Expect(surf.calls).To(Equal([]fillCall{
			{100 + 5 + 2*5, 200 + 6, 4, 3, gray(1)},
			{100 + 5, 200 + 6 + 5, 4, 3, gray(2)},
			{100 + 5 + 5, 200 + 6 + 5, 4, 3, gray(3)},
		}))
	})

	It("calls every cell after Clear with a color", func() {
		m.Clear(gray(9))
		m.Render(surf, nil)
		Expect(surf.calls).To(HaveLen(6))
	})

	It("agrees with CellRect", func() {
		m.Clear(gray(1))
		m.Render(surf, nil)
		for i, call := range surf.calls {
			r, ok := m.CellRect(i%3, i/3)
			Expect(ok).To(BeTrue())
			Expect(image.Rect(call.X, call.Y, call.X+call.W, call.Y+call.H)).To(Equal(r))
		}
	})

	It("uses a custom draw function", func() {
		m.SetPixel(1, 0, gray(5))
		var got []fillCall
		m.Render(surf, func(s raster.Surface, x, y, w, h int, c color.Color) {
			Expect(s).To(BeIdenticalTo(surf))
			got = append(got, fillCall{x, y, w, h, c})
		})
		Expect(surf.calls).To(BeEmpty())
		Expect(got).To(Equal([]fillCall{{110, 206, 4, 3, gray(5)}}))
	})

	It("follows offset changes", func() {
		m.SetPixel(0, 0, gray(1))
		m.SetOffset(image.Pt(0, 0))
		m.Render(surf, nil)
		Expect(surf.calls[0].X).To(Equal(5))
		Expect(surf.calls[0].Y).To(Equal(6))
	})
})
