package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// channels is the number of bytes each sampled pixel contributes (R, G, B).
const channels = 3

// Contains reports whether rect, relative to the image origin, lies entirely
// inside bounds. It never overflows for large coordinates.
func Contains(bounds image.Rectangle, rect image.Rectangle) bool {
	w, h := bounds.Dx(), bounds.Dy()
	x, y := rect.Min.X, rect.Min.Y
	rw, rh := rect.Dx(), rect.Dy()

	if x < 0 || y < 0 || rect.Max.X < x || rect.Max.Y < y {
		return false
	}
	return rw <= w && x <= w-rw && rh <= h && y <= h-rh
}

// Sample returns the RGB bytes of rect in row-major order.
//
// rect is relative to the image origin. It must be fully contained in the
// image; a region that overruns an edge is rejected rather than clipped.
func Sample(img image.Image, rect image.Rectangle) ([]byte, error) {
	bounds := img.Bounds()

	if !Contains(bounds, rect) {
		return nil, fmt.Errorf("%w: region (%d,%d)-(%d,%d) outside image %dx%d",
			ErrRegionOutOfBounds, rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y, bounds.Dx(), bounds.Dy())
	}
	if rect.Empty() {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyRegion, rect.Dx(), rect.Dy())
	}

	// Crop converts any source color model to non-premultiplied 8-bit RGBA.
	cropped := imaging.Crop(img, rect.Add(bounds.Min))

	width, height := rect.Dx(), rect.Dy()
	samples := make([]byte, 0, width*height*channels)
	for row := 0; row < height; row++ {
		line := cropped.Pix[row*cropped.Stride : row*cropped.Stride+width*4]
		for px := 0; px < len(line); px += 4 {
			samples = append(samples, line[px], line[px+1], line[px+2])
		}
	}

	return samples, nil
}
