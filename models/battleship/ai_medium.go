package battleship

import (
	"math/rand"
)

// mediumSelector hunts randomly until it lands a hit, then works the
// target queue: the unshot orthogonal neighbours of every unsunk hit.
// Sinking a ship turns its hits into sunk cells, which empties the
// queue and drops the selector back into hunt mode.
type mediumSelector struct {
	rng *rand.Rand
}

var _ TargetSelector = (*mediumSelector)(nil)

func (s *mediumSelector) SelectTarget(view *TrackingGrid) (Coord, error) {
	queue := s.targetQueue(view)
	if len(queue) > 0 {
		return queue[s.rng.Intn(len(queue))], nil
	}

	return (&easySelector{rng: s.rng}).SelectTarget(view)
}

func (s *mediumSelector) targetQueue(view *TrackingGrid) []Coord {
	queue := make([]Coord, 0, 8)
	seen := make(map[Coord]bool, 8)

	for _, hit := range hitCells(view) {
		for _, n := range orthogonalUnshot(view, hit) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return queue
}
