package battleship

import (
	"errors"
	"testing"

	cerr "github.com/navalclash/navalclash-backend/internal/error"
)

func TestCellAtBounds(t *testing.T) {
	grid := NewGrid(DefaultGridSize, NewDefaultFleetSpec(), 0)

	if _, err := grid.CellAt(NewCoord(0, 0)); err != nil {
		t.Fatalf("expected in-bounds cell, got error: %s", err)
	}
	if _, err := grid.CellAt(NewCoord(9, 9)); err != nil {
		t.Fatalf("expected in-bounds cell, got error: %s", err)
	}

	outOfBounds := []Coord{
		NewCoord(-1, 0),
		NewCoord(0, -1),
		NewCoord(10, 0),
		NewCoord(0, 10),
	}
	for _, c := range outOfBounds {
		if _, err := grid.CellAt(c); !errors.Is(err, cerr.ErrOutOfBounds) {
			t.Fatalf("coord %+v: expected ErrOutOfBounds, got %v", c, err)
		}
	}
}

func TestNeighborsClippedToBounds(t *testing.T) {
	grid := NewGrid(DefaultGridSize, NewDefaultFleetSpec(), 0)

	tests := []struct {
		coord Coord
		count int
	}{
		{NewCoord(0, 0), 3},
		{NewCoord(0, 5), 5},
		{NewCoord(9, 9), 3},
		{NewCoord(4, 4), 8},
	}

	for _, test := range tests {
		neighbors := grid.Neighbors(test.coord)
		if len(neighbors) != test.count {
			t.Fatalf("coord %+v: expected %d neighbors, got %d", test.coord, test.count, len(neighbors))
		}
		for _, n := range neighbors {
			if n == test.coord {
				t.Fatalf("coord %+v: neighbors must not include the coord itself", test.coord)
			}
			if !grid.inBounds(n) {
				t.Fatalf("coord %+v: neighbor %+v out of bounds", test.coord, n)
			}
		}
	}
}

func TestAllShipsSunkOnEmptyGrid(t *testing.T) {
	grid := NewGrid(DefaultGridSize, NewDefaultFleetSpec(), 0)
	if grid.AllShipsSunk() {
		t.Fatal("a grid with no ships must not count as all sunk")
	}
}
