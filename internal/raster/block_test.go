package raster_test

import (
	"image/color"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rastermatrix/internal/raster"
)

var _ = Describe("Blocks", func() {
	var m *raster.Matrix

	BeforeEach(func() {
		m = newMatrix(4, 4)
	})

	It("round-trips a block fully inside the grid", func() {
		colors := grays(1, 2, 3, 4, 5, 6)
		m.SetPixelBlock(1, 2, 3, 2, colors)
		Expect(m.PixelBlock(1, 2, 3, 2)).To(Equal(colors))
		Expect(m.Pixel(0, 2)).To(BeNil())
		Expect(m.Pixel(1, 1)).To(BeNil())
	})

	It("round-trips the whole grid as one block", func() {
		colors := make([]color.Color, 16)
		for i := range colors {
			colors[i] = gray(uint8(i + 1))
		}
		m.SetPixelBlock(0, 0, 4, 4, colors)
		Expect(m.PixelBlock(0, 0, 4, 4)).To(Equal(colors))
		Expect(m.Pixels()).To(Equal(colors))
	})

	It("ignores colors beyond bw*bh", func() {
		m.SetPixelBlock(0, 0, 2, 1, grays(1, 2, 3))
		Expect(m.Pixels()[:3]).To(Equal([]color.Color{gray(1), gray(2), nil}))
	})

	Describe("clipping", func() {
		nine := grays(1, 2, 3, 4, 5, 6, 7, 8, 9)

		It("takes the bottom-right source cells when clipped top-left", func() {
			m.SetPixelBlock(-1, -1, 3, 3, nine)

			Expect(m.PixelBlock(0, 0, 2, 2)).To(Equal(grays(5, 6, 8, 9)))
			written := 0
			for _, c := range m.Pixels() {
				if c != nil {
					written++
				}
			}
			Expect(written).To(Equal(4))
		})

		It("takes the top-left source cells when clipped bottom-right", func() {
			m.SetPixelBlock(3, 3, 3, 3, nine)
			Expect(m.Pixel(3, 3)).To(Equal(gray(1)))
			Expect(m.Pixel(2, 3)).To(BeNil())
			Expect(m.Pixel(3, 2)).To(BeNil())
		})

		It("clips the top-right corner", func() {
			m.SetPixelBlock(2, -2, 3, 3, nine)
			Expect(m.PixelBlock(2, 0, 2, 1)).To(Equal(grays(7, 8)))
			Expect(m.Pixel(2, 1)).To(BeNil())
		})

		It("clips all four sides at once", func() {
			big := make([]color.Color, 36)
			for i := range big {
				big[i] = gray(uint8(i))
			}
			m.SetPixelBlock(-1, -1, 6, 6, big)
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					Expect(m.Pixel(x, y)).To(Equal(big[(y+1)*6+x+1]))
				}
			}
		})

		DescribeTable("skips blocks entirely outside the grid",
			func(x, y int) {
				m.SetPixelBlock(x, y, 3, 3, nine)
				for _, c := range m.Pixels() {
					Expect(c).To(BeNil())
				}
			},
			Entry("left", -3, 0),
			Entry("right", 4, 0),
			Entry("above", 0, -3),
			Entry("below", 0, 4),
		)
	})

	It("skips writes with too few colors", func() {
		m.SetPixelBlock(0, 0, 3, 3, grays(1, 2, 3))
		for _, c := range m.Pixels() {
			Expect(c).To(BeNil())
		}
	})

	DescribeTable("skips writes whose size overflows bw*bh",
		func(bw, bh int, colors []color.Color) {
			Expect(func() { m.SetPixelBlock(0, 0, bw, bh, colors) }).NotTo(Panic())
			for _, c := range m.Pixels() {
				Expect(c).To(BeNil())
			}
		},
		Entry("both sides 1<<32, no colors", 1<<32, 1<<32, []color.Color{}),
		Entry("both sides 1<<32, a few colors", 1<<32, 1<<32, grays(1, 2, 3, 4)),
		Entry("wide row", 1<<62, 4, grays(1, 2, 3, 4)),
		Entry("tall column", 1, 1<<62, grays(1, 2, 3, 4)),
	)

	It("skips writes with non-positive block sizes", func() {
		m.SetPixelBlock(0, 0, 0, 3, grays(1, 2, 3))
		m.SetPixelBlock(0, 0, -1, -1, grays(1))
		for _, c := range m.Pixels() {
			Expect(c).To(BeNil())
		}
	})

	Describe("read/write asymmetry", func() {
		DescribeTable("PixelBlock rejects what SetPixelBlock clips",
			func(x, y int) {
				m.SetPixelBlock(x, y, 2, 2, grays(1, 2, 3, 4))
				Expect(m.PixelBlock(x, y, 2, 2)).To(BeEmpty())

				written := 0
				for _, c := range m.Pixels() {
					if c != nil {
						written++
					}
				}
				Expect(written).To(BeNumerically(">", 0))
			},
			Entry("one past the left edge", -1, 0),
			Entry("one past the top edge", 0, -1),
			Entry("one past the right edge", 3, 0),
			Entry("one past the bottom edge", 0, 3),
		)

		It("reads the block flush with the bottom-right corner", func() {
			m.SetPixelBlock(2, 2, 2, 2, grays(1, 2, 3, 4))
			Expect(m.PixelBlock(2, 2, 2, 2)).To(Equal(grays(1, 2, 3, 4)))
		})

		It("returns an empty result for non-positive sizes", func() {
			Expect(m.PixelBlock(0, 0, 0, 2)).To(BeEmpty())
		})
	})
})
