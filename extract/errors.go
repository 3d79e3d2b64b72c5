package extract

import "errors"

var (
	// ErrInvalidColorCount is returned when the requested palette size is
	// less than 1. No clustering is attempted.
	ErrInvalidColorCount = errors.New("color count must be at least 1")

	// ErrEmptyImage is returned when sampling yields no pixels, either
	// because the image has no area or every pixel is below the alpha
	// threshold.
	ErrEmptyImage = errors.New("image has no opaque pixels to sample")
)
