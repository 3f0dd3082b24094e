package t2048

// Direction represents a move direction.
// The declaration order is the order in which the search tries directions.
type Direction int

const (
	DirUp Direction = iota
	DirLeft
	DirDown
	DirRight
)

// Directions lists all directions in search order.
var Directions = [...]Direction{DirUp, DirLeft, DirDown, DirRight}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
