package extract

import (
	"fmt"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit per channel sRGB color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the color as #RRGGBB.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HSL carries hue in degrees [0, 360) and saturation and lightness in [0, 1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", c.H, c.S*100, c.L*100)
}

// Color is one palette entry: a representative color and the share of the
// image's sampled pixels it stands for, in (0, 1].
type Color struct {
	RGB        RGB     `json:"rgb"`
	HSL        HSL     `json:"hsl"`
	Proportion float64 `json:"proportion"`
}

func newColor(r, g, b uint8, proportion float64) Color {
	h, s, l := colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}.Hsl()

	return Color{
		RGB:        RGB{R: r, G: g, B: b},
		HSL:        HSL{H: h, S: s, L: l},
		Proportion: proportion,
	}
}

// mean is the population-weighted channel average of the box's samples,
// accumulated in uint64 and rounded half up to 8 bits.
func (b box) mean(samples []sample) (uint8, uint8, uint8) {
	var rSum, gSum, bSum uint64
	for _, s := range samples[b.lo:b.hi] {
		rSum += uint64(s.r)
		gSum += uint64(s.g)
		bSum += uint64(s.b)
	}

	pop := uint64(b.population())
	return uint8((rSum + pop/2) / pop),
		uint8((gSum + pop/2) / pop),
		uint8((bSum + pop/2) / pop)
}

// assemble turns final boxes into the ordered palette: proportions are taken
// against the total retained sample count and sorted descending, with ties
// kept in cluster creation order by the stable sort.
func assemble(samples []sample, boxes []box) []Color {
	total := 0
	for _, b := range boxes {
		total += b.population()
	}

	colors := make([]Color, 0, len(boxes))
	for _, b := range boxes {
		r, g, bl := b.mean(samples)
		colors = append(colors, newColor(r, g, bl, float64(b.population())/float64(total)))
	}

	slices.SortStableFunc(colors, byProportionDesc)
	return colors
}

func byProportionDesc(a, b Color) int {
	switch {
	case a.Proportion > b.Proportion:
		return -1
	case a.Proportion < b.Proportion:
		return 1
	default:
		return 0
	}
}
