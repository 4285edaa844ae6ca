package battleship

import (
	cerr "github.com/navalclash/navalclash-backend/internal/error"
)

// impossibleSelector plays the statistically best shot. Every turn it
// recounts, for each unshot cell, the number of ways the remaining
// ships could legally lie across it given the revealed hits, misses
// and sunk cells, then fires at the cell with the highest count. Ties
// break to the lowest (row, col), so the choice is fully
// deterministic for a given view.
type impossibleSelector struct{}

var _ TargetSelector = (*impossibleSelector)(nil)

func (s *impossibleSelector) SelectTarget(view *TrackingGrid) (Coord, error) {
	counts, err := placementDensity(view)
	if err != nil {
		return Coord{}, err
	}

	best := Coord{Row: -1, Col: -1}
	bestCount := 0
	for r := 0; r < view.Size(); r++ {
		for c := 0; c < view.Size(); c++ {
			coord := NewCoord(r, c)
			if !view.Unshot(coord) {
				continue
			}
			if counts[r][c] > bestCount {
				bestCount = counts[r][c]
				best = coord
			}
		}
	}

	if bestCount == 0 {
		return Coord{}, cerr.ErrNoLegalPlacement(0)
	}
	return best, nil
}

// placementDensity enumerates every horizontal and vertical placement
// of every remaining ship length that stays in bounds and avoids
// misses, sunk cells and triggered mines. Each placement raises the
// count of the unshot cells it covers. State consistency is enforced
// loudly: a remaining length with zero legal placements, or a hit
// cell no placement can cover, is an internal inconsistency.
func placementDensity(view *TrackingGrid) ([][]int, error) {
	size := view.Size()
	counts := make([][]int, size)
	for i := range counts {
		counts[i] = make([]int, size)
	}

	remaining := view.RemainingShipLengths()
	if len(remaining) == 0 {
		return nil, cerr.ErrNoLegalPlacement(0)
	}

	hitCoverable := make(map[Coord]bool)

	for _, length := range remaining {
		legal := 0

		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				for _, vertical := range [2]bool{false, true} {
					cells, ok := placementCells(view, NewCoord(r, c), length, vertical)
					if !ok {
						continue
					}
					legal++
					for _, pc := range cells {
						state, _ := view.StateAt(pc)
						if state == CellEmpty {
							counts[pc.Row][pc.Col]++
						} else {
							hitCoverable[pc] = true
						}
					}
				}
			}
		}

		if legal == 0 {
			return nil, cerr.ErrNoLegalPlacement(length)
		}
	}

	for _, hit := range hitCells(view) {
		if !hitCoverable[hit] {
			return nil, cerr.ErrHitCellNotCoverable(hit.Row, hit.Col)
		}
	}

	return counts, nil
}

// placementCells materializes the run of cells a ship of the given
// length would occupy starting at origin, and reports whether that
// run is a legal hypothesis: in bounds, and crossing only unknown or
// hit cells.
func placementCells(view *TrackingGrid, origin Coord, length int, vertical bool) ([]Coord, bool) {
	cells := make([]Coord, 0, length)
	for i := 0; i < length; i++ {
		c := origin
		if vertical {
			c.Row += i
		} else {
			c.Col += i
		}

		state, err := view.StateAt(c)
		if err != nil {
			return nil, false
		}
		if state != CellEmpty && state != CellHit {
			return nil, false
		}
		cells = append(cells, c)
	}
	return cells, true
}
