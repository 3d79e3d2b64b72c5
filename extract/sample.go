package extract

import (
	"image"
	"image/draw"
)

// DefaultAlphaThreshold is the minimum alpha a pixel needs to be sampled.
// Pixels below it contribute neither to clustering nor to the proportion
// denominator.
const DefaultAlphaThreshold = 16

type sample struct {
	r, g, b, a uint8
}

// sampleImage flattens img into a contiguous sample buffer, dropping pixels
// whose alpha is below alphaThreshold. Boxes later reference index ranges
// into this buffer instead of holding per-pixel allocations.
func sampleImage(img image.Image, alphaThreshold uint8) []sample {
	src := toNRGBA(img)
	bounds := src.Bounds()
	width := bounds.Dx()

	samples := make([]sample, 0, width*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		offset := src.PixOffset(bounds.Min.X, y)
		row := src.Pix[offset : offset+width*4]
		for x := 0; x < len(row); x += 4 {
			a := row[x+3]
			if a < alphaThreshold {
				continue
			}
			samples = append(samples, sample{r: row[x], g: row[x+1], b: row[x+2], a: a})
		}
	}

	return samples
}

func toNRGBA(img image.Image) *image.NRGBA {
	if src, ok := img.(*image.NRGBA); ok {
		return src
	}

	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}
