package battleship

import (
	"math/rand"
)

// hardSelector refines the medium strategy twice over. Hunting only
// fires on checkerboard-parity cells, which the minimum ship length
// of 2 guarantees to probe every ship. Targeting extends linearly
// once two hits reveal the orientation, firing at the two ends of the
// growing line; an end blocked by a miss, a revealed cell or the
// board edge is abandoned.
type hardSelector struct {
	rng *rand.Rand
}

var _ TargetSelector = (*hardSelector)(nil)

func (s *hardSelector) SelectTarget(view *TrackingGrid) (Coord, error) {
	hits := hitCells(view)

	switch {
	case len(hits) >= 2:
		if ends := lineEnds(view, hits); len(ends) > 0 {
			return ends[s.rng.Intn(len(ends))], nil
		}
		// Orientation known but both ends blocked; the open hits must
		// belong to separate ships, so probe around them again.
		fallthrough

	case len(hits) == 1:
		queue := (&mediumSelector{rng: s.rng}).targetQueue(view)
		if len(queue) > 0 {
			return queue[s.rng.Intn(len(queue))], nil
		}
	}

	return s.huntTarget(view)
}

// huntTarget picks a random unshot cell with even (row+col) parity,
// falling back to any unshot cell once the parity class is exhausted.
func (s *hardSelector) huntTarget(view *TrackingGrid) (Coord, error) {
	unshot := view.UnshotCoords()
	parity := make([]Coord, 0, len(unshot)/2+1)
	for _, c := range unshot {
		if (c.Row+c.Col)%2 == 0 {
			parity = append(parity, c)
		}
	}
	if len(parity) > 0 {
		return parity[s.rng.Intn(len(parity))], nil
	}

	return (&easySelector{rng: s.rng}).SelectTarget(view)
}

// lineEnds finds the two cells extending the straight run of hits and
// keeps the ones still open to fire at.
func lineEnds(view *TrackingGrid, hits []Coord) []Coord {
	horizontal := true
	vertical := true
	for _, h := range hits[1:] {
		if h.Row != hits[0].Row {
			horizontal = false
		}
		if h.Col != hits[0].Col {
			vertical = false
		}
	}
	if !horizontal && !vertical {
		return nil
	}

	lo, hi := hits[0], hits[0]
	for _, h := range hits[1:] {
		if h.Less(lo) {
			lo = h
		}
		if hi.Less(h) {
			hi = h
		}
	}

	var before, after Coord
	if horizontal {
		before = NewCoord(lo.Row, lo.Col-1)
		after = NewCoord(hi.Row, hi.Col+1)
	} else {
		before = NewCoord(lo.Row-1, lo.Col)
		after = NewCoord(hi.Row+1, hi.Col)
	}

	ends := make([]Coord, 0, 2)
	if view.Unshot(before) {
		ends = append(ends, before)
	}
	if view.Unshot(after) {
		ends = append(ends, after)
	}
	return ends
}
