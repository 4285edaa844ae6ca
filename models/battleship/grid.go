package battleship

import (
	cerr "github.com/navalclash/navalclash-backend/internal/error"
)

const (
	DefaultGridSize = 10

	// MaxGridSize caps operator and client supplied sizes; 26 is the
	// largest board a letter-labelled axis can name.
	MaxGridSize = 26
)

// Cell states of a defence grid. A cell only moves forward through
// these states (empty -> occupied -> revealed), never back.
const (
	CellEmpty uint8 = iota
	CellShip
	CellMine
	CellHit
	CellMiss
	CellSunk
	CellTriggeredMine
)

type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoord(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Less orders coordinates lexicographically by (row, col). The
// impossible-tier targeting relies on this for deterministic
// tie-breaking.
func (c Coord) Less(other Coord) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

type Cell struct {
	State  uint8
	ShipId int
	MineId int
}

// revealed reports whether this cell was already fired at.
func (c Cell) revealed() bool {
	switch c.State {
	case CellHit, CellMiss, CellSunk, CellTriggeredMine:
		return true
	}
	return false
}

func (c Cell) occupied() bool {
	return c.State == CellShip || c.State == CellMine
}

// Grid owns the cells, ships and mines of one player's fleet side.
// Cells are mutated only through placement (setup) and shot
// resolution (play); no other component writes them.
type Grid struct {
	size  int
	cells [][]Cell
	ships map[int]*Ship
	mines map[int]*Mine

	fleet        FleetSpec
	placedByKind map[ShipKind]int
	mineQuota    int
	minesPlaced  int

	nextShipId int
	nextMineId int
}

func NewGrid(size int, fleet FleetSpec, mineQuota int) *Grid {
	cells := make([][]Cell, size)
	for i := 0; i < size; i++ {
		cells[i] = make([]Cell, size)
	}

	return &Grid{
		size:         size,
		cells:        cells,
		ships:        make(map[int]*Ship, fleet.TotalShips()),
		mines:        make(map[int]*Mine, mineQuota),
		fleet:        fleet,
		placedByKind: make(map[ShipKind]int, len(fleet)),
		mineQuota:    mineQuota,
		nextShipId:   1,
		nextMineId:   1,
	}
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) inBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

func (g *Grid) CellAt(c Coord) (Cell, error) {
	if !g.inBounds(c) {
		return Cell{}, cerr.ErrCoordOutOfBounds(c.Row, c.Col)
	}
	return g.cells[c.Row][c.Col], nil
}

// Neighbors returns the up to 8 orthogonally and diagonally adjacent
// coordinates of c, clipped to the grid bounds.
func (g *Grid) Neighbors(c Coord) []Coord {
	neighbors := make([]Coord, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := NewCoord(c.Row+dr, c.Col+dc)
			if g.inBounds(n) {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

func (g *Grid) Ship(id int) (*Ship, bool) {
	ship, prs := g.ships[id]
	return ship, prs
}

func (g *Grid) Mine(id int) (*Mine, bool) {
	mine, prs := g.mines[id]
	return mine, prs
}

// AllShipsSunk reports whether every placed ship is sunk. A grid with
// no ships placed yet reports false so an empty board never counts as
// a lost one.
func (g *Grid) AllShipsSunk() bool {
	if len(g.ships) == 0 {
		return false
	}
	for _, ship := range g.ships {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}
