package battleship

import (
	"math/rand"

	cerr "github.com/navalclash/navalclash-backend/internal/error"
)

const (
	AiDifficultyEasy uint8 = iota
	AiDifficultyMedium
	AiDifficultyHard
	AiDifficultyImpossible
)

// TargetSelector picks the next shot for a computer player. It only
// ever sees the attacker's tracking grid, i.e. revealed cells and the
// roster of opponent ships still afloat.
type TargetSelector interface {
	SelectTarget(view *TrackingGrid) (Coord, error)
}

// NewTargetSelector builds the selector for an ai difficulty tier.
// The rand source is injected so games are reproducible under a
// seeded source; the impossible tier ignores it entirely.
func NewTargetSelector(difficulty uint8, rng *rand.Rand) (TargetSelector, error) {
	switch difficulty {
	case AiDifficultyEasy:
		return &easySelector{rng: rng}, nil
	case AiDifficultyMedium:
		return &mediumSelector{rng: rng}, nil
	case AiDifficultyHard:
		return &hardSelector{rng: rng}, nil
	case AiDifficultyImpossible:
		return &impossibleSelector{}, nil
	}
	return nil, cerr.ErrInvalidAiDifficulty(difficulty)
}

func IsAiDifficultyValid(difficulty uint8) bool {
	return difficulty <= AiDifficultyImpossible
}

// hitCells lists revealed hits that do not belong to a sunk ship yet,
// in (row, col) order.
func hitCells(view *TrackingGrid) []Coord {
	hits := make([]Coord, 0, 4)
	for r := 0; r < view.Size(); r++ {
		for c := 0; c < view.Size(); c++ {
			coord := NewCoord(r, c)
			if state, _ := view.StateAt(coord); state == CellHit {
				hits = append(hits, coord)
			}
		}
	}
	return hits
}

// orthogonalUnshot returns the unshot cells directly left, right,
// above and below c.
func orthogonalUnshot(view *TrackingGrid, c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range [4]Coord{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}} {
		n := NewCoord(c.Row+d.Row, c.Col+d.Col)
		if view.Unshot(n) {
			out = append(out, n)
		}
	}
	return out
}
