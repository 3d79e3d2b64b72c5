// Package extract computes a small, weighted palette of dominant colors from
// a raster image using median-cut quantization: samples are grouped into
// axis-aligned boxes in RGB space, the heaviest box is split at the median of
// its widest channel until the target count is reached, and each final box
// becomes one color weighted by its share of the sampled pixels.
package extract

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
)

// Method selects the clustering algorithm.
type Method int

const (
	// MethodMedianCut is the default. It is fully deterministic: identical
	// input and color count always produce the identical palette.
	MethodMedianCut Method = iota
	// MethodKMeans clusters with k-means instead. Its random initialization
	// makes results vary between runs.
	MethodKMeans
)

// Options tune extraction. The zero value of AlphaThreshold keeps fully
// transparent pixels, so most callers want DefaultOptions as a base.
type Options struct {
	// AlphaThreshold is the minimum alpha for a pixel to be sampled.
	AlphaThreshold uint8
	// MaxDimension, when positive, downscales the image before sampling so
	// its longest side does not exceed it.
	MaxDimension int
	// Method is the clustering algorithm to run.
	Method Method
}

func DefaultOptions() Options {
	return Options{AlphaThreshold: DefaultAlphaThreshold}
}

// Extract decodes the image at path and returns its count dominant colors,
// ordered by descending proportion.
func Extract(path string, count int) ([]Color, error) {
	return ExtractWithOptions(path, count, DefaultOptions())
}

func ExtractWithOptions(path string, count int, opts Options) ([]Color, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer f.Close()

	return ExtractReaderWithOptions(f, count, opts)
}

// ExtractReader decodes an image from r and extracts its dominant colors.
// Decode failures are propagated without entering the clustering engine.
func ExtractReader(r io.Reader, count int) ([]Color, error) {
	return ExtractReaderWithOptions(r, count, DefaultOptions())
}

func ExtractReaderWithOptions(r io.Reader, count int, opts Options) ([]Color, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %w", err)
	}

	return ExtractImageWithOptions(img, count, opts)
}

// ExtractImage extracts the dominant colors of an already decoded image.
func ExtractImage(img image.Image, count int) ([]Color, error) {
	return ExtractImageWithOptions(img, count, DefaultOptions())
}

func ExtractImageWithOptions(img image.Image, count int, opts Options) ([]Color, error) {
	if count < 1 {
		return nil, ErrInvalidColorCount
	}

	if opts.MaxDimension > 0 {
		img = downscale(img, opts.MaxDimension)
	}

	samples := sampleImage(img, opts.AlphaThreshold)
	if len(samples) == 0 {
		return nil, ErrEmptyImage
	}

	if opts.Method == MethodKMeans {
		return kmeansPalette(samples, count)
	}

	return assemble(samples, partition(samples, count)), nil
}

func downscale(img image.Image, maxDimension int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	longest := max(width, height)
	if longest <= maxDimension {
		return img
	}

	scale := float64(maxDimension) / float64(longest)
	dst := image.NewNRGBA(image.Rect(0, 0,
		max(int(math.Round(float64(width)*scale)), 1),
		max(int(math.Round(float64(height)*scale)), 1)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
