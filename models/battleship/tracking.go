package battleship

import (
	cerr "github.com/navalclash/navalclash-backend/internal/error"
)

// TrackingGrid is a player's view of the opponent's board. It holds
// nothing but revealed information: hit, miss, sunk and triggered
// mine cells plus the lengths of opponent ships not yet sunk. The
// targeting engine works exclusively on this view, so it can never
// observe an unrevealed ship position.
type TrackingGrid struct {
	size      int
	cells     [][]uint8
	remaining []int
}

func NewTrackingGrid(size int, fleet FleetSpec) *TrackingGrid {
	cells := make([][]uint8, size)
	for i := 0; i < size; i++ {
		cells[i] = make([]uint8, size)
	}
	return &TrackingGrid{
		size:      size,
		cells:     cells,
		remaining: fleet.Lengths(),
	}
}

func (t *TrackingGrid) Size() int {
	return t.size
}

func (t *TrackingGrid) inBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < t.size && c.Col >= 0 && c.Col < t.size
}

func (t *TrackingGrid) StateAt(c Coord) (uint8, error) {
	if !t.inBounds(c) {
		return 0, cerr.ErrCoordOutOfBounds(c.Row, c.Col)
	}
	return t.cells[c.Row][c.Col], nil
}

// Unshot reports whether c is in bounds and not yet fired at.
func (t *TrackingGrid) Unshot(c Coord) bool {
	return t.inBounds(c) && t.cells[c.Row][c.Col] == CellEmpty
}

// UnshotCoords lists every not-yet-fired coordinate in (row, col)
// order.
func (t *TrackingGrid) UnshotCoords() []Coord {
	coords := make([]Coord, 0, t.size*t.size)
	for r := 0; r < t.size; r++ {
		for c := 0; c < t.size; c++ {
			if t.cells[r][c] == CellEmpty {
				coords = append(coords, NewCoord(r, c))
			}
		}
	}
	return coords
}

// RemainingShipLengths returns the lengths of opponent ships not yet
// sunk, largest first.
func (t *TrackingGrid) RemainingShipLengths() []int {
	out := make([]int, len(t.remaining))
	copy(out, t.remaining)
	return out
}

// RecordOutcome folds a resolved shot back into the view.
func (t *TrackingGrid) RecordOutcome(outcome ShotOutcome) {
	c := outcome.Coord
	if !t.inBounds(c) {
		return
	}

	switch outcome.Kind {
	case OutcomeMiss:
		t.cells[c.Row][c.Col] = CellMiss

	case OutcomeHit:
		t.cells[c.Row][c.Col] = CellHit

	case OutcomeMineTriggered:
		t.cells[c.Row][c.Col] = CellTriggeredMine

	case OutcomeHitAndSunk:
		for _, sc := range outcome.Sunk {
			if t.inBounds(sc) {
				t.cells[sc.Row][sc.Col] = CellSunk
			}
		}
		t.removeRemaining(len(outcome.Sunk))
	}
}

func (t *TrackingGrid) removeRemaining(length int) {
	for i, l := range t.remaining {
		if l == length {
			t.remaining = append(t.remaining[:i], t.remaining[i+1:]...)
			return
		}
	}
}
