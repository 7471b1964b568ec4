package pixel2ascii

import (
	"image"
	"math"
)

// Sample is the aggregate of one block of pixels: the truncated mean of each
// channel and a BT.709 luminance derived from those means.
type Sample struct {
	R, G, B uint8
	Lum     float32
}

// BlockSize derives the pixel dimensions of one character cell. width is the
// target number of characters per row and aspect the width/height ratio of a
// character; both must be positive.
func BlockSize(imageWidth, width int, aspect float32) (blockW, blockH int) {
	if width <= 0 {
		panic("pixel2ascii: width must be > 0")
	}
	if !(aspect > 0) {
		panic("pixel2ascii: aspect must be > 0")
	}

	ratio := float32(imageWidth) / float32(width)
	// Height is derived from the unrounded width, before either is clamped.
	h := ratio / aspect

	return roundAtLeastOne(ratio), roundAtLeastOne(h)
}

// maxBlock bounds a block dimension. A tiny aspect can push the height past
// float32 range; such a block simply covers the whole image.
const maxBlock = math.MaxInt32

func roundAtLeastOne(v float32) int {
	if v < 1 {
		v = 1
	}
	if v >= maxBlock {
		return maxBlock
	}
	return int(math.Round(float64(v)))
}

// SampleBlocks strides blockW x blockH cells over img, top to bottom and left
// to right. Blocks on the right and bottom edges may be partial; they are
// averaged over whatever pixels they cover.
func SampleBlocks(img *image.NRGBA, blockW, blockH int, invert bool) [][]Sample {
	bounds := img.Bounds()
	var rows [][]Sample
	for y := bounds.Min.Y; y < bounds.Max.Y; y += blockH {
		var row []Sample
		for x := bounds.Min.X; x < bounds.Max.X; x += blockW {
			cell := image.Rect(x, y, x+blockW, y+blockH).Intersect(bounds)
			row = append(row, sampleBlock(img, cell, invert))
		}
		rows = append(rows, row)
	}
	return rows
}

func sampleBlock(img *image.NRGBA, r image.Rectangle, invert bool) Sample {
	var rSum, gSum, bSum, count uint32
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			rSum += uint32(img.Pix[i])
			gSum += uint32(img.Pix[i+1])
			bSum += uint32(img.Pix[i+2])
			count++
			i += 4
		}
	}

	s := Sample{
		R: uint8(rSum / count),
		G: uint8(gSum / count),
		B: uint8(bSum / count),
	}
	s.Lum = Luminance(s.R, s.G, s.B)
	if invert {
		s.Lum = 255 - s.Lum
	}
	return s
}

// Luminance is the ITU-R BT.709 relative luminance of an 8-bit color, in
// [0, 255]. Each product is rounded to float32 before summing.
func Luminance(r, g, b uint8) float32 {
	return float32(0.2126*float32(r)) + float32(0.7152*float32(g)) + float32(0.0722*float32(b))
}
