package battleship

import (
	"errors"
	"testing"

	cerr "github.com/navalclash/navalclash-backend/internal/error"
)

func TestResolveShotMiss(t *testing.T) {
	grid := NewGrid(DefaultGridSize, NewDefaultFleetSpec(), 0)

	outcome, err := grid.ResolveShot(NewCoord(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != OutcomeMiss {
		t.Fatalf("expected miss, got kind %d", outcome.Kind)
	}
	if outcome.RetainsTurn() {
		t.Fatal("a miss must pass the turn")
	}

	cell, _ := grid.CellAt(NewCoord(0, 0))
	if cell.State != CellMiss {
		t.Fatalf("expected CellMiss, got %d", cell.State)
	}
}

func TestResolveShotAlreadyShot(t *testing.T) {
	grid := NewGrid(DefaultGridSize, NewDefaultFleetSpec(), 0)

	if _, err := grid.ResolveShot(NewCoord(3, 3)); err != nil {
		t.Fatal(err)
	}

	// Every subsequent shot at the same cell fails, no matter how
	// often it is repeated.
	for i := 0; i < 3; i++ {
		if _, err := grid.ResolveShot(NewCoord(3, 3)); !errors.Is(err, cerr.ErrAlreadyShot) {
			t.Fatalf("re-fire %d: expected ErrAlreadyShot, got %v", i, err)
		}
	}
}

func TestResolveShotSinkingCompleteness(t *testing.T) {
	grid := NewGrid(DefaultGridSize, NewDefaultFleetSpec(), 0)

	ship, err := grid.PlaceShip(ShipDestroyer, horizontalCoords(4, 2, 3))
	if err != nil {
		t.Fatal(err)
	}

	// First two hits are plain hits and keep the turn.
	for _, c := range []Coord{NewCoord(4, 2), NewCoord(4, 3)} {
		outcome, err := grid.ResolveShot(c)
		if err != nil {
			t.Fatal(err)
		}
		if outcome.Kind != OutcomeHit {
			t.Fatalf("coord %+v: expected hit, got kind %d", c, outcome.Kind)
		}
		if !outcome.RetainsTurn() {
			t.Fatal("a hit must retain the turn")
		}
		if ship.IsSunk() {
			t.Fatal("ship reported sunk before all cells hit")
		}
	}

	// The last unhit coordinate sinks it, exactly once.
	outcome, err := grid.ResolveShot(NewCoord(4, 4))
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != OutcomeHitAndSunk {
		t.Fatalf("expected hit-and-sunk, got kind %d", outcome.Kind)
	}
	if outcome.ShipId != ship.Id {
		t.Fatalf("expected ship id %d, got %d", ship.Id, outcome.ShipId)
	}
	if len(outcome.Sunk) != 3 {
		t.Fatalf("expected 3 sunk coords, got %d", len(outcome.Sunk))
	}

	for _, c := range ship.Coords() {
		cell, _ := grid.CellAt(c)
		if cell.State != CellSunk {
			t.Fatalf("cell %+v: expected CellSunk, got %d", c, cell.State)
		}
	}
}

func TestResolveShotMineTrigger(t *testing.T) {
	grid := NewGrid(DefaultGridSize, NewDefaultFleetSpec(), 1)

	mine, err := grid.PlaceMine(NewCoord(6, 6))
	if err != nil {
		t.Fatal(err)
	}

	outcome, err := grid.ResolveShot(NewCoord(6, 6))
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != OutcomeMineTriggered {
		t.Fatalf("expected mine trigger, got kind %d", outcome.Kind)
	}
	if outcome.MineId != mine.Id {
		t.Fatalf("expected mine id %d, got %d", mine.Id, outcome.MineId)
	}
	if outcome.RetainsTurn() {
		t.Fatal("mine detonation must consume the turn")
	}
	if !mine.Triggered {
		t.Fatal("mine not marked as triggered")
	}

	// The cell is revealed now and rejects re-fire.
	if _, err := grid.ResolveShot(NewCoord(6, 6)); !errors.Is(err, cerr.ErrAlreadyShot) {
		t.Fatalf("expected ErrAlreadyShot, got %v", err)
	}
}

func TestResolveShotOutOfBounds(t *testing.T) {
	grid := NewGrid(DefaultGridSize, NewDefaultFleetSpec(), 0)
	if _, err := grid.ResolveShot(NewCoord(10, 0)); !errors.Is(err, cerr.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}
