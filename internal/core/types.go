package core

// Size describes the dimensions of a map grid.
type Size struct {
	W int
	H int
}

// Point identifies one tile position.
type Point struct {
	X int
	Y int
}

// Direction is one of the 8 compass directions, enumerated clockwise from
// north. NoDirection marks tiles without a downhill neighbor.
type Direction int8

const (
	North Direction = iota
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest

	NoDirection Direction = -1
)

// DirOffsets maps each direction to its (dx, dy) tile offset, in the same
// clockwise-from-north order as the Direction constants.
var DirOffsets = [8]Point{
	{0, -1},  // north
	{1, -1},  // northeast
	{1, 0},   // east
	{1, 1},   // southeast
	{0, 1},   // south
	{-1, 1},  // southwest
	{-1, 0},  // west
	{-1, -1}, // northwest
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	if d == NoDirection {
		return NoDirection
	}
	return (d + 4) % 8
}

func (d Direction) String() string {
	names := [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	if d < 0 || int(d) >= len(names) {
		return "none"
	}
	return names[d]
}
