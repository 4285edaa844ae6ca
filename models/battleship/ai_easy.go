package battleship

import (
	"fmt"
	"math/rand"

	cerr "github.com/navalclash/navalclash-backend/internal/error"
)

// easySelector fires uniformly at random among the not-yet-shot
// cells. It keeps no memory between turns beyond what the tracking
// grid already excludes.
type easySelector struct {
	rng *rand.Rand
}

var _ TargetSelector = (*easySelector)(nil)

func (s *easySelector) SelectTarget(view *TrackingGrid) (Coord, error) {
	unshot := view.UnshotCoords()
	if len(unshot) == 0 {
		return Coord{}, fmt.Errorf("%w: no unshot cells left to target", cerr.ErrInternalInconsistency)
	}
	return unshot[s.rng.Intn(len(unshot))], nil
}
