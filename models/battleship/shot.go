package battleship

import (
	cerr "github.com/navalclash/navalclash-backend/internal/error"
)

const (
	OutcomeMiss uint8 = iota
	OutcomeHit
	OutcomeHitAndSunk
	OutcomeMineTriggered
)

type ShotOutcome struct {
	Kind   uint8   `json:"kind"`
	Coord  Coord   `json:"coord"`
	ShipId int     `json:"ship_id,omitempty"`
	MineId int     `json:"mine_id,omitempty"`
	Sunk   []Coord `json:"sunk,omitempty"`
}

// RetainsTurn implements the turn-continuation policy: a hit keeps
// the attacker shooting, a miss passes the turn, and a mine
// detonation consumes the turn.
func (o ShotOutcome) RetainsTurn() bool {
	return o.Kind == OutcomeHit || o.Kind == OutcomeHitAndSunk
}

// ResolveShot applies a shot to this grid. Revealed cells reject the
// shot with AlreadyShot; a cell may be fired on at most once.
func (g *Grid) ResolveShot(c Coord) (ShotOutcome, error) {
	if !g.inBounds(c) {
		return ShotOutcome{}, cerr.ErrCoordOutOfBounds(c.Row, c.Col)
	}

	cell := &g.cells[c.Row][c.Col]
	if cell.revealed() {
		return ShotOutcome{}, cerr.ErrCellAlreadyShot(c.Row, c.Col)
	}

	switch cell.State {
	case CellMine:
		mine := g.mines[cell.MineId]
		mine.Triggered = true
		cell.State = CellTriggeredMine
		return ShotOutcome{Kind: OutcomeMineTriggered, Coord: c, MineId: mine.Id}, nil

	case CellShip:
		ship := g.ships[cell.ShipId]
		ship.GotHit(c)
		cell.State = CellHit

		if ship.IsSunk() {
			for _, sc := range ship.Coords() {
				g.cells[sc.Row][sc.Col].State = CellSunk
			}
			return ShotOutcome{Kind: OutcomeHitAndSunk, Coord: c, ShipId: ship.Id, Sunk: ship.Coords()}, nil
		}
		return ShotOutcome{Kind: OutcomeHit, Coord: c, ShipId: ship.Id}, nil

	default:
		cell.State = CellMiss
		return ShotOutcome{Kind: OutcomeMiss, Coord: c}, nil
	}
}

// DestroyShip sinks a ship outright and reveals all of its cells.
// Used by the extended game mode when a selected firing ship hits a
// mine and detonates.
func (g *Grid) DestroyShip(shipId int) []Coord {
	ship, prs := g.ships[shipId]
	if !prs {
		return nil
	}
	for _, c := range ship.Coords() {
		ship.GotHit(c)
		g.cells[c.Row][c.Col].State = CellSunk
	}
	return ship.Coords()
}
