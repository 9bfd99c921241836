package raster_test

import (
	"image/color"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rastermatrix/internal/raster"
)

var _ = Describe("Buffer", func() {
	var m *raster.Matrix

	BeforeEach(func() {
		m = newMatrix(4, 4)
	})

	Describe("SetPixel and Pixel", func() {
		It("round-trips every in-bounds cell", func() {
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					c := gray(uint8(x + y*4 + 1))
					m.SetPixel(x, y, c)
					Expect(m.Pixel(x, y)).To(Equal(c))
				}
			}
		})

		It("stores cells in row-major order", func() {
			m.SetPixel(1, 2, gray(7))
			Expect(m.PixelByIndex(1 + 2*4)).To(Equal(gray(7)))
		})

		DescribeTable("ignores out-of-bounds coordinates",
			func(x, y int) {
				before := m.Pixels()
				Expect(func() { m.SetPixel(x, y, gray(1)) }).NotTo(Panic())
				Expect(m.Pixels()).To(Equal(before))
				Expect(m.Pixel(x, y)).To(BeNil())
			},
			Entry("left", -1, 0),
			Entry("top", 0, -1),
			Entry("right", 4, 0),
			Entry("bottom", 0, 4),
			Entry("far away", 100, -100),
		)
	})

	Describe("Clear", func() {
		It("fills every cell with the color", func() {
			m.Clear(gray(3))
			px := m.Pixels()
			Expect(px).To(HaveLen(16))
			for _, c := range px {
				Expect(c).To(Equal(gray(3)))
			}
		})

		It("empties the grid with nil", func() {
			m.Clear(gray(3))
			m.Clear(nil)
			for _, c := range m.Pixels() {
				Expect(c).To(BeNil())
			}
		})
	})

	Describe("index access", func() {
		It("accepts index zero and the last index", func() {
			m.SetPixelByIndex(0, gray(1))
			m.SetPixelByIndex(15, gray(2))
			Expect(m.PixelByIndex(0)).To(Equal(gray(1)))
			Expect(m.PixelByIndex(15)).To(Equal(gray(2)))
			Expect(m.Pixel(0, 0)).To(Equal(gray(1)))
			Expect(m.Pixel(3, 3)).To(Equal(gray(2)))
		})

		It("ignores indices outside the buffer", func() {
			m.SetPixelByIndex(-1, gray(1))
			m.SetPixelByIndex(16, gray(1))
			Expect(m.PixelByIndex(-1)).To(BeNil())
			Expect(m.PixelByIndex(16)).To(BeNil())
			for _, c := range m.Pixels() {
				Expect(c).To(BeNil())
			}
		})
	})

	Describe("SetPixels", func() {
		It("leaves trailing cells untouched for a short slice", func() {
			m.Clear(gray(9))
			m.SetPixels(grays(1, 2, 3))
			px := m.Pixels()
			Expect(px[:3]).To(Equal(grays(1, 2, 3)))
			Expect(px[3]).To(Equal(gray(9)))
			Expect(px[15]).To(Equal(gray(9)))
		})

		It("ignores colors past the buffer length", func() {
			long := make([]color.Color, 20)
			for i := range long {
				long[i] = gray(uint8(i))
			}
			m.SetPixels(long)
			Expect(m.Pixels()).To(Equal(long[:16]))
		})
	})

	Describe("ownership", func() {
		It("returns a snapshot from Pixels", func() {
			m.SetPixel(0, 0, gray(1))
			snap := m.Pixels()
			snap[0] = gray(42)
			Expect(m.Pixel(0, 0)).To(Equal(gray(1)))
		})

		It("returns the live buffer from PixelBuffer", func() {
			buf := m.PixelBuffer()
			Expect(buf).To(HaveLen(16))
			buf[5] = gray(8)
			Expect(m.PixelByIndex(5)).To(Equal(gray(8)))
		})
	})
})
