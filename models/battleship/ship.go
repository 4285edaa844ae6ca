package battleship

type ShipKind uint8

const (
	ShipBattleship ShipKind = iota
	ShipCruiser
	ShipDestroyer
	ShipSubmarine
)

func (k ShipKind) String() string {
	switch k {
	case ShipBattleship:
		return "battleship"
	case ShipCruiser:
		return "cruiser"
	case ShipDestroyer:
		return "destroyer"
	case ShipSubmarine:
		return "submarine"
	}
	return "unknown"
}

func (k ShipKind) Length() int {
	switch k {
	case ShipBattleship:
		return 5
	case ShipCruiser:
		return 4
	case ShipDestroyer:
		return 3
	case ShipSubmarine:
		return 2
	}
	return 0
}

// FleetSpec maps each ship kind to how many of it a player must place.
type FleetSpec map[ShipKind]int

// NewDefaultFleetSpec is the classic roster: one battleship, one
// cruiser, two destroyers and two submarines (5/4/3/3/2/2).
func NewDefaultFleetSpec() FleetSpec {
	return FleetSpec{
		ShipBattleship: 1,
		ShipCruiser:    1,
		ShipDestroyer:  2,
		ShipSubmarine:  2,
	}
}

func (f FleetSpec) TotalShips() int {
	total := 0
	for _, n := range f {
		total += n
	}
	return total
}

// Lengths returns one entry per ship in the roster, largest first.
func (f FleetSpec) Lengths() []int {
	lengths := make([]int, 0, f.TotalShips())
	for _, kind := range []ShipKind{ShipBattleship, ShipCruiser, ShipDestroyer, ShipSubmarine} {
		for i := 0; i < f[kind]; i++ {
			lengths = append(lengths, kind.Length())
		}
	}
	return lengths
}

const (
	OrientationHorizontal uint8 = iota
	OrientationVertical
)

type Ship struct {
	Id          int
	Kind        ShipKind
	Orientation uint8
	coords      []Coord
	hits        map[Coord]bool
}

func NewShip(id int, kind ShipKind, orientation uint8, coords []Coord) *Ship {
	return &Ship{
		Id:          id,
		Kind:        kind,
		Orientation: orientation,
		coords:      coords,
		hits:        make(map[Coord]bool, len(coords)),
	}
}

func (sh *Ship) Coords() []Coord {
	return sh.coords
}

func (sh *Ship) GotHit(c Coord) {
	sh.hits[c] = true
}

func (sh *Ship) IsSunk() bool {
	return len(sh.hits) == len(sh.coords)
}
