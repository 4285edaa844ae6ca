package battleship

// Mine occupies a single cell. Unlike ships it is exempt from the
// adjacency rule and may touch ships and other mines freely.
type Mine struct {
	Id        int
	Coord     Coord
	Triggered bool
}

func NewMine(id int, c Coord) *Mine {
	return &Mine{Id: id, Coord: c}
}
