package battleship

import (
	cerr "github.com/navalclash/navalclash-backend/internal/error"
)

// Placement validation. Checks run fully before any cell is written,
// so a rejected placement leaves the grid untouched.
//
// Rule order: bounds, overlap, ship/ship adjacency, shape, quota.
// Mines skip the adjacency and shape rules; they may touch anything.

func (g *Grid) PlaceShip(kind ShipKind, coords []Coord) (*Ship, error) {
	for _, c := range coords {
		if !g.inBounds(c) {
			return nil, cerr.ErrCoordOutOfBounds(c.Row, c.Col)
		}
	}

	for _, c := range coords {
		if g.cells[c.Row][c.Col].occupied() {
			return nil, cerr.ErrCoordOccupied(c.Row, c.Col)
		}
	}

	for _, c := range coords {
		for _, n := range g.Neighbors(c) {
			if g.cells[n.Row][n.Col].State == CellShip {
				return nil, cerr.ErrShipTouchesShip(n.Row, n.Col)
			}
		}
	}

	orientation, err := shipOrientation(kind, coords)
	if err != nil {
		return nil, err
	}

	if g.placedByKind[kind] >= g.fleet[kind] {
		return nil, cerr.ErrShipQuotaExhausted(kind.String())
	}

	ship := NewShip(g.nextShipId, kind, orientation, coords)
	g.nextShipId++
	for _, c := range coords {
		g.cells[c.Row][c.Col] = Cell{State: CellShip, ShipId: ship.Id}
	}
	g.ships[ship.Id] = ship
	g.placedByKind[kind]++

	return ship, nil
}

func (g *Grid) PlaceMine(c Coord) (*Mine, error) {
	if !g.inBounds(c) {
		return nil, cerr.ErrCoordOutOfBounds(c.Row, c.Col)
	}
	if g.cells[c.Row][c.Col].occupied() {
		return nil, cerr.ErrCoordOccupied(c.Row, c.Col)
	}
	if g.minesPlaced >= g.mineQuota {
		return nil, cerr.ErrMineQuotaExhausted()
	}

	mine := NewMine(g.nextMineId, c)
	g.nextMineId++
	g.cells[c.Row][c.Col] = Cell{State: CellMine, MineId: mine.Id}
	g.mines[mine.Id] = mine
	g.minesPlaced++

	return mine, nil
}

// PlacementComplete reports whether every ship of the fleet roster
// and every mine of the quota has been placed.
func (g *Grid) PlacementComplete() bool {
	for kind, required := range g.fleet {
		if g.placedByKind[kind] < required {
			return false
		}
	}
	return g.minesPlaced >= g.mineQuota
}

// shipOrientation verifies the candidate cells form a contiguous
// straight line of exactly the kind's length and reports whether the
// line runs horizontally or vertically.
func shipOrientation(kind ShipKind, coords []Coord) (uint8, error) {
	if len(coords) != kind.Length() {
		return 0, cerr.ErrShapeWrongLength(kind.String(), kind.Length(), len(coords))
	}

	horizontal := true
	vertical := true
	for _, c := range coords {
		if c.Row != coords[0].Row {
			horizontal = false
		}
		if c.Col != coords[0].Col {
			vertical = false
		}
	}

	switch {
	case horizontal && len(coords) == 1:
		return OrientationHorizontal, nil

	case horizontal && !contiguous(coords, false):
		return 0, cerr.ErrShapeNotStraightLine()

	case horizontal:
		return OrientationHorizontal, nil

	case vertical && !contiguous(coords, true):
		return 0, cerr.ErrShapeNotStraightLine()

	case vertical:
		return OrientationVertical, nil
	}

	return 0, cerr.ErrShapeNotStraightLine()
}

// contiguous checks the varying axis covers an unbroken run.
func contiguous(coords []Coord, vertical bool) bool {
	seen := make(map[int]bool, len(coords))
	lo := 0
	for i, c := range coords {
		axis := c.Col
		if vertical {
			axis = c.Row
		}
		if seen[axis] {
			return false
		}
		seen[axis] = true
		if i == 0 || axis < lo {
			lo = axis
		}
	}
	for i := lo; i < lo+len(coords); i++ {
		if !seen[i] {
			return false
		}
	}
	return true
}
