package battleship

import (
	"math/rand"
	"testing"
)

func newView(size int, fleet FleetSpec) *TrackingGrid {
	return NewTrackingGrid(size, fleet)
}

func markMiss(view *TrackingGrid, c Coord) {
	view.RecordOutcome(ShotOutcome{Kind: OutcomeMiss, Coord: c})
}

func markHit(view *TrackingGrid, c Coord) {
	view.RecordOutcome(ShotOutcome{Kind: OutcomeHit, Coord: c})
}

func TestEasySelectorOnlyUnshotCells(t *testing.T) {
	view := newView(DefaultGridSize, NewDefaultFleetSpec())
	rng := rand.New(rand.NewSource(1))

	selector, err := NewTargetSelector(AiDifficultyEasy, rng)
	if err != nil {
		t.Fatal(err)
	}

	// Shoot the whole board through the selector; it must never
	// produce a coordinate twice.
	for i := 0; i < DefaultGridSize*DefaultGridSize; i++ {
		target, err := selector.SelectTarget(view)
		if err != nil {
			t.Fatalf("selection %d: %s", i, err)
		}
		if !view.Unshot(target) {
			t.Fatalf("selection %d: %+v already shot", i, target)
		}
		markMiss(view, target)
	}

	if _, err := selector.SelectTarget(view); err == nil {
		t.Fatal("expected error once no unshot cells remain")
	}
}

func TestMediumSelectorTargetsHitNeighbors(t *testing.T) {
	view := newView(DefaultGridSize, NewDefaultFleetSpec())
	rng := rand.New(rand.NewSource(1))

	selector, err := NewTargetSelector(AiDifficultyMedium, rng)
	if err != nil {
		t.Fatal(err)
	}

	markHit(view, NewCoord(4, 4))

	want := map[Coord]bool{
		NewCoord(3, 4): true,
		NewCoord(5, 4): true,
		NewCoord(4, 3): true,
		NewCoord(4, 5): true,
	}
	for i := 0; i < 20; i++ {
		target, err := selector.SelectTarget(view)
		if err != nil {
			t.Fatal(err)
		}
		if !want[target] {
			t.Fatalf("selection %d: %+v is not an orthogonal neighbor of the hit", i, target)
		}
	}
}

func TestMediumSelectorRevertsToHuntAfterSink(t *testing.T) {
	view := newView(DefaultGridSize, NewDefaultFleetSpec())
	rng := rand.New(rand.NewSource(1))

	selector, err := NewTargetSelector(AiDifficultyMedium, rng)
	if err != nil {
		t.Fatal(err)
	}

	markHit(view, NewCoord(4, 4))
	view.RecordOutcome(ShotOutcome{
		Kind:  OutcomeHitAndSunk,
		Coord: NewCoord(4, 5),
		Sunk:  []Coord{NewCoord(4, 4), NewCoord(4, 5)},
	})

	// With the ship sunk there is no open hit left; any unshot cell
	// is acceptable again, including cells far from the sunk ship.
	target, err := selector.SelectTarget(view)
	if err != nil {
		t.Fatal(err)
	}
	if !view.Unshot(target) {
		t.Fatalf("selected revealed cell %+v", target)
	}
}

func TestHardSelectorParityHunt(t *testing.T) {
	view := newView(DefaultGridSize, NewDefaultFleetSpec())
	rng := rand.New(rand.NewSource(3))

	selector, err := NewTargetSelector(AiDifficultyHard, rng)
	if err != nil {
		t.Fatal(err)
	}

	// Without any hits the hard tier must stay on the even parity
	// class.
	for i := 0; i < 30; i++ {
		target, err := selector.SelectTarget(view)
		if err != nil {
			t.Fatal(err)
		}
		if (target.Row+target.Col)%2 != 0 {
			t.Fatalf("selection %d: %+v breaks checkerboard parity", i, target)
		}
		markMiss(view, target)
	}
}

func TestHardSelectorExtendsAlongOrientation(t *testing.T) {
	view := newView(DefaultGridSize, NewDefaultFleetSpec())
	rng := rand.New(rand.NewSource(3))

	selector, err := NewTargetSelector(AiDifficultyHard, rng)
	if err != nil {
		t.Fatal(err)
	}

	// Two horizontal hits: only the two row ends may be fired next.
	markHit(view, NewCoord(6, 3))
	markHit(view, NewCoord(6, 4))

	want := map[Coord]bool{
		NewCoord(6, 2): true,
		NewCoord(6, 5): true,
	}
	for i := 0; i < 20; i++ {
		target, err := selector.SelectTarget(view)
		if err != nil {
			t.Fatal(err)
		}
		if !want[target] {
			t.Fatalf("selection %d: %+v does not extend the line", i, target)
		}
	}

	// A miss at one end abandons that direction.
	markMiss(view, NewCoord(6, 2))
	for i := 0; i < 10; i++ {
		target, err := selector.SelectTarget(view)
		if err != nil {
			t.Fatal(err)
		}
		if target != NewCoord(6, 5) {
			t.Fatalf("selection %d: expected (6,5), got %+v", i, target)
		}
	}
}
