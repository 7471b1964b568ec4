package pixel2ascii

import (
	"image"
	"image/draw"
	"image/gif"

	"github.com/disintegration/imaging"
)

/*
Composite flattens the frames of a GIF onto a full size canvas and returns a
snapshot of the canvas after each frame is drawn. Transparent pixels let the
previous canvas show through, and disposal methods are respected:

	DisposalBackground clears the frame's rectangle once it has been shown.
	DisposalPrevious restores the canvas as it was before the frame.
	Anything else leaves the frame in place under the next one.
*/
func Composite(giff *gif.GIF) []*image.NRGBA {
	canvas := image.NewNRGBA(canvasBounds(giff))
	frames := make([]*image.NRGBA, 0, len(giff.Image))

	for i, frame := range giff.Image {
		var disposal byte
		if i < len(giff.Disposal) {
			disposal = giff.Disposal[i]
		}

		var previous *image.NRGBA
		if disposal == gif.DisposalPrevious {
			previous = imaging.Clone(canvas)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		frames = append(frames, imaging.Clone(canvas))

		switch disposal {
		// Dispose background replaces everything just drawn with the transparent background
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		// Dispose previous essentially means draw then undo
		case gif.DisposalPrevious:
			canvas = previous
		}
	}
	return frames
}

// canvasBounds uses the logical screen size from the GIF header, falling
// back to the union of the frame rectangles when the header is empty.
func canvasBounds(giff *gif.GIF) image.Rectangle {
	if giff.Config.Width > 0 && giff.Config.Height > 0 {
		return image.Rect(0, 0, giff.Config.Width, giff.Config.Height)
	}
	var r image.Rectangle
	for _, frame := range giff.Image {
		r = r.Union(frame.Bounds())
	}
	return image.Rect(0, 0, r.Max.X, r.Max.Y)
}
