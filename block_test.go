package pixel2ascii_test

import (
	"image"
	"image/color"
	"math"

	. "github.com/kevin-cantwell/pixel2ascii"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("BlockSize", func() {
	It("gives square blocks for aspect 1", func() {
		w, h := BlockSize(100, 100, 1)
		Expect(w).To(Equal(1))
		Expect(h).To(Equal(1))
	})

	It("makes blocks taller when aspect is below 1", func() {
		w, h := BlockSize(200, 100, 0.5)
		Expect(w).To(Equal(2))
		Expect(h).To(Equal(4))
	})

	It("derives the height from the unrounded width", func() {
		w, h := BlockSize(100, 30, 0.5)
		Expect(w).To(Equal(3))
		Expect(h).To(Equal(7))
	})

	It("rounds halves away from zero", func() {
		w, h := BlockSize(7, 2, 1)
		Expect(w).To(Equal(4))
		Expect(h).To(Equal(4))
	})

	It("never goes below one pixel", func() {
		for _, imageWidth := range []int{1, 3, 10, 640} {
			for _, width := range []int{1, 7, 100, 5000} {
				for _, aspect := range []float32{0.1, 0.5, 1, 2, 8} {
					w, h := BlockSize(imageWidth, width, aspect)
					Expect(w).To(BeNumerically(">=", 1))
					Expect(h).To(BeNumerically(">=", 1))
				}
			}
		}
		w, h := BlockSize(10, 100, 0.5)
		Expect(w).To(Equal(1))
		Expect(h).To(Equal(1))
	})

	It("panics on a non-positive width or aspect", func() {
		Expect(func() { BlockSize(10, 0, 1) }).To(Panic())
		Expect(func() { BlockSize(10, 5, 0) }).To(Panic())
		Expect(func() { BlockSize(10, 5, float32(math.NaN())) }).To(Panic())
	})

	It("caps the height when a tiny aspect overflows it", func() {
		w, h := BlockSize(100, 10, 1e-38)
		Expect(w).To(Equal(10))
		Expect(h).To(Equal(math.MaxInt32))

		grid := SampleBlocks(uniform(20, 20, white), w, h, false)
		Expect(grid).To(HaveLen(1))
		Expect(grid[0]).To(HaveLen(2))
	})
})

var _ = Describe("SampleBlocks", func() {
	It("covers partial trailing blocks", func() {
		img := image.NewNRGBA(image.Rect(0, 0, 10, 7))
		grid := SampleBlocks(img, 3, 2, false)
		Expect(grid).To(HaveLen(4))
		for _, row := range grid {
			Expect(row).To(HaveLen(4))
		}
	})

	It("averages each channel with truncating division", func() {
		img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
		img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 0, B: 1, A: 255})
		img.SetNRGBA(1, 0, color.NRGBA{R: 21, G: 1, B: 2, A: 255})
		img.SetNRGBA(2, 0, color.NRGBA{R: 31, G: 7, B: 9, A: 255})

		grid := SampleBlocks(img, 2, 1, false)
		Expect(grid).To(HaveLen(1))
		Expect(grid[0]).To(HaveLen(2))

		Expect(grid[0][0].R).To(Equal(uint8(15)))
		Expect(grid[0][0].G).To(Equal(uint8(0)))
		Expect(grid[0][0].B).To(Equal(uint8(1)))

		Expect(grid[0][1].R).To(Equal(uint8(31)))
		Expect(grid[0][1].G).To(Equal(uint8(7)))
		Expect(grid[0][1].B).To(Equal(uint8(9)))
	})

	It("ignores alpha", func() {
		img := uniform(2, 2, color.NRGBA{R: 40, G: 80, B: 120, A: 0})
		s := SampleBlocks(img, 2, 2, false)[0][0]
		Expect([]uint8{s.R, s.G, s.B}).To(Equal([]uint8{40, 80, 120}))
	})

	It("computes BT.709 luminance of a uniform block", func() {
		img := uniform(4, 4, color.NRGBA{R: 10, G: 200, B: 30, A: 255})
		want := 0.2126*10 + 0.7152*200 + 0.0722*30

		s := SampleBlocks(img, 4, 4, false)[0][0]
		Expect(s.Lum).To(BeNumerically("~", want, 1e-3))

		inv := SampleBlocks(img, 4, 4, true)[0][0]
		Expect(inv.Lum).To(BeNumerically("~", 255-want, 1e-3))
		Expect(inv.R).To(Equal(s.R))
	})

	It("handles images whose bounds do not start at the origin", func() {
		img := uniform(6, 6, white).SubImage(image.Rect(2, 2, 6, 6)).(*image.NRGBA)
		grid := SampleBlocks(img, 2, 2, false)
		Expect(grid).To(HaveLen(2))
		Expect(grid[1]).To(HaveLen(2))
		Expect(grid[1][1].Lum).To(BeNumerically("~", 255, 1e-3))
	})
})
