package world

// Direction represents one of the eight compass directions on the grid
type Direction int

// Direction constants. The four cardinal directions come first so that
// movement code can restrict itself to them with IsCardinal.
const (
	North Direction = iota
	East
	South
	West
	NorthEast
	SouthEast
	SouthWest
	NorthWest
)

// ScanOrder returns the neighbour scan order used when looking around a cell.
// With eight set it walks the full ring row by row (NW, N, NE, W, E, SW, S, SE),
// otherwise only the orthogonal neighbours in the same row-major order (N, W, E, S).
func ScanOrder(eight bool) []Direction {
	if eight {
		return []Direction{NorthWest, North, NorthEast, West, East, SouthWest, South, SouthEast}
	}
	return []Direction{North, West, East, South}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	case NorthEast:
		return "NorthEast"
	case SouthEast:
		return "SouthEast"
	case SouthWest:
		return "SouthWest"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the eight compass directions
func (d Direction) IsValid() bool {
	return d >= North && d <= NorthWest
}

// IsCardinal returns true for North, East, South and West
func (d Direction) IsCardinal() bool {
	return d >= North && d <= West
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	case NorthEast:
		return -1, 1
	case SouthEast:
		return 1, 1
	case SouthWest:
		return 1, -1
	case NorthWest:
		return -1, -1
	default:
		return 0, 0
	}
}
