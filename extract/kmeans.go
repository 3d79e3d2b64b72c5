package extract

import (
	"fmt"
	"math"
	"slices"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// kmeansPalette is the alternative clustering backend. Populations come from
// the observation count of each cluster, so proportions carry the same
// meaning as with median cut.
func kmeansPalette(samples []sample, count int) ([]Color, error) {
	dataset := make(clusters.Observations, 0, len(samples))
	for _, s := range samples {
		dataset = append(dataset, clusters.Coordinates{
			float64(s.r) / 255,
			float64(s.g) / 255,
			float64(s.b) / 255,
		})
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, min(count, len(dataset)))
	if err != nil {
		return nil, fmt.Errorf("could not cluster samples: %w", err)
	}

	total := 0
	for _, c := range cc {
		total += len(c.Observations)
	}
	if total == 0 {
		return nil, ErrEmptyImage
	}

	colors := make([]Color, 0, len(cc))
	for _, c := range cc {
		if len(c.Observations) == 0 || len(c.Center) < 3 {
			continue
		}
		colors = append(colors, newColor(
			channelFromUnit(c.Center[0]),
			channelFromUnit(c.Center[1]),
			channelFromUnit(c.Center[2]),
			float64(len(c.Observations))/float64(total)))
	}

	slices.SortStableFunc(colors, byProportionDesc)
	return colors, nil
}

func channelFromUnit(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 255))
}
