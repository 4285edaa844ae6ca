package battleship

import (
	"errors"
	"testing"

	cerr "github.com/navalclash/navalclash-backend/internal/error"
)

func TestImpossibleSelectorSingleConsistentCell(t *testing.T) {
	// 10x10 board, one 2-length ship at (3,3)-(3,4). Everything is
	// revealed as a miss except the hit at (3,3) and the unshot
	// (3,4). The only placement consistent with the revealed state is
	// the real one, so (3,4) must carry the maximum weight.
	view := newView(DefaultGridSize, FleetSpec{ShipSubmarine: 1})
	for r := 0; r < DefaultGridSize; r++ {
		for c := 0; c < DefaultGridSize; c++ {
			if r == 3 && (c == 3 || c == 4) {
				continue
			}
			markMiss(view, NewCoord(r, c))
		}
	}
	markHit(view, NewCoord(3, 3))

	selector, err := NewTargetSelector(AiDifficultyImpossible, nil)
	if err != nil {
		t.Fatal(err)
	}

	target, err := selector.SelectTarget(view)
	if err != nil {
		t.Fatal(err)
	}
	if target != NewCoord(3, 4) {
		t.Fatalf("expected (3,4), got %+v", target)
	}
}

func TestImpossibleSelectorDeterministic(t *testing.T) {
	buildView := func() *TrackingGrid {
		view := newView(DefaultGridSize, NewDefaultFleetSpec())
		markMiss(view, NewCoord(0, 0))
		markMiss(view, NewCoord(7, 2))
		markHit(view, NewCoord(5, 5))
		return view
	}

	selector, err := NewTargetSelector(AiDifficultyImpossible, nil)
	if err != nil {
		t.Fatal(err)
	}

	first, err := selector.SelectTarget(buildView())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := selector.SelectTarget(buildView())
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("run %d: got %+v, want %+v", i, again, first)
		}
	}
}

func TestImpossibleSelectorNeverTargetsRevealedCells(t *testing.T) {
	view := newView(DefaultGridSize, NewDefaultFleetSpec())
	selector, err := NewTargetSelector(AiDifficultyImpossible, nil)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 40; i++ {
		target, err := selector.SelectTarget(view)
		if err != nil {
			t.Fatal(err)
		}
		if !view.Unshot(target) {
			t.Fatalf("selection %d: revealed cell %+v", i, target)
		}
		markMiss(view, target)
	}
}

func TestImpossibleSelectorUncoverableHitFailsLoudly(t *testing.T) {
	// A hit boxed in by misses on all four sides cannot belong to any
	// remaining ship of length >= 2. That is a corrupted state and
	// must surface as an internal inconsistency, not a silent
	// default.
	view := newView(DefaultGridSize, FleetSpec{ShipSubmarine: 1})
	markHit(view, NewCoord(4, 4))
	markMiss(view, NewCoord(3, 4))
	markMiss(view, NewCoord(5, 4))
	markMiss(view, NewCoord(4, 3))
	markMiss(view, NewCoord(4, 5))

	selector, err := NewTargetSelector(AiDifficultyImpossible, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := selector.SelectTarget(view); !errors.Is(err, cerr.ErrInternalInconsistency) {
		t.Fatalf("expected ErrInternalInconsistency, got %v", err)
	}
}

func TestImpossibleSelectorNoLegalPlacementFailsLoudly(t *testing.T) {
	// A battleship cannot fit on a 4x4 board.
	view := newView(4, FleetSpec{ShipBattleship: 1})
	view.cells[0][0] = CellMiss

	selector, err := NewTargetSelector(AiDifficultyImpossible, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := selector.SelectTarget(view); !errors.Is(err, cerr.ErrInternalInconsistency) {
		t.Fatalf("expected ErrInternalInconsistency, got %v", err)
	}
}

func TestImpossibleSelectorCenterBiasOnFreshBoard(t *testing.T) {
	// On an untouched board the density map peaks away from the
	// edges; corners see the fewest placements. With lexicographic
	// tie-breaking the very first selection is reproducible and must
	// not be a corner.
	view := newView(DefaultGridSize, NewDefaultFleetSpec())
	selector, err := NewTargetSelector(AiDifficultyImpossible, nil)
	if err != nil {
		t.Fatal(err)
	}

	target, err := selector.SelectTarget(view)
	if err != nil {
		t.Fatal(err)
	}
	corners := map[Coord]bool{
		NewCoord(0, 0): true,
		NewCoord(0, 9): true,
		NewCoord(9, 0): true,
		NewCoord(9, 9): true,
	}
	if corners[target] {
		t.Fatalf("fresh-board selection must not be a corner, got %+v", target)
	}
}
