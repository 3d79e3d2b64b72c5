package extract

import "slices"

type channel int

const (
	channelR channel = iota
	channelG
	channelB
)

// box is a cluster-in-progress: a half-open range [lo, hi) of the shared
// sample buffer, plus the per-channel bounds of the samples in that range.
// seq records creation order for deterministic tie-breaking.
type box struct {
	lo, hi     int
	rMin, rMax uint8
	gMin, gMax uint8
	bMin, bMax uint8
	seq        int
}

func newBox(samples []sample, lo, hi, seq int) box {
	b := box{lo: lo, hi: hi, seq: seq, rMin: 255, gMin: 255, bMin: 255}
	for _, s := range samples[lo:hi] {
		b.rMin = min(b.rMin, s.r)
		b.rMax = max(b.rMax, s.r)
		b.gMin = min(b.gMin, s.g)
		b.gMax = max(b.gMax, s.g)
		b.bMin = min(b.bMin, s.b)
		b.bMax = max(b.bMax, s.b)
	}
	return b
}

func (b box) population() int {
	return b.hi - b.lo
}

func (b box) rangeSum() int {
	return int(b.rMax-b.rMin) + int(b.gMax-b.gMin) + int(b.bMax-b.bMin)
}

// splittable reports whether the box can still be divided: it needs at least
// two samples and a nonzero range on some channel. Anything else is final.
func (b box) splittable() bool {
	return b.population() >= 2 && b.rangeSum() > 0
}

// widestChannel picks the channel with the largest range, preferring
// r over g over b on ties.
func (b box) widestChannel() channel {
	rr := b.rMax - b.rMin
	gr := b.gMax - b.gMin
	br := b.bMax - b.bMin

	if rr >= gr && rr >= br {
		return channelR
	}
	if gr >= br {
		return channelG
	}
	return channelB
}

func (s sample) value(ch channel) uint8 {
	switch ch {
	case channelR:
		return s.r
	case channelG:
		return s.g
	default:
		return s.b
	}
}

// partition runs the median-cut loop: all samples start in a single root box
// and the heaviest splittable box is divided until target boxes exist or no
// box can be split. Returned boxes are ordered by creation, which the
// assembler uses as its tie-break. Splitting sorts sample sub-slices in
// place.
func partition(samples []sample, target int) []box {
	if len(samples) == 0 {
		return nil
	}

	boxes := make([]box, 0, target)
	boxes = append(boxes, newBox(samples, 0, len(samples), 0))
	nextSeq := 1

	for len(boxes) < target {
		idx := nextSplit(boxes)
		if idx < 0 {
			break
		}

		low, high := splitBox(samples, boxes[idx], nextSeq)
		nextSeq += 2
		boxes[idx] = low
		boxes = append(boxes, high)
	}

	slices.SortFunc(boxes, func(a, b box) int {
		return a.seq - b.seq
	})
	return boxes
}

// nextSplit selects the box to divide: largest population first, since heavy
// boxes dominate the palette's visual error when left unsplit. Ties go to
// the largest channel range sum, then to the earliest-created box.
func nextSplit(boxes []box) int {
	best := -1
	for i, b := range boxes {
		if !b.splittable() {
			continue
		}
		if best < 0 || splitsBefore(b, boxes[best]) {
			best = i
		}
	}
	return best
}

func splitsBefore(a, b box) bool {
	if a.population() != b.population() {
		return a.population() > b.population()
	}
	if a.rangeSum() != b.rangeSum() {
		return a.rangeSum() > b.rangeSum()
	}
	return a.seq < b.seq
}

// splitBox orders the box's samples along its widest channel and cuts at the
// median index. The sort key falls through to the remaining channels so the
// outcome does not depend on sampling order; with at least two samples both
// halves are non-empty.
func splitBox(samples []sample, parent box, seq int) (box, box) {
	ch := parent.widestChannel()

	slices.SortFunc(samples[parent.lo:parent.hi], func(a, b sample) int {
		if v := int(a.value(ch)) - int(b.value(ch)); v != 0 {
			return v
		}
		if v := int(a.r) - int(b.r); v != 0 {
			return v
		}
		if v := int(a.g) - int(b.g); v != 0 {
			return v
		}
		return int(a.b) - int(b.b)
	})

	mid := parent.lo + parent.population()/2
	return newBox(samples, parent.lo, mid, seq), newBox(samples, mid, parent.hi, seq+1)
}
