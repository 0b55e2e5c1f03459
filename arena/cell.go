// Package arena holds the snake simulation: the cell grid, the snake body and
// the per-tick movement and growth rules.
package arena

// Kind identifies what occupies a cell.
type Kind uint8

const (
	Empty Kind = iota
	Border
	Snake
	Food
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Border:
		return "border"
	case Snake:
		return "snake"
	case Food:
		return "food"
	default:
		return "unknown"
	}
}

// FoodColors is the number of display attributes food picks from.
const FoodColors = 6

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Cell is one grid position and its occupant. Cells are values; changing a
// cell means writing a new one into the grid.
type Cell struct {
	X, Y int
	Kind Kind
	// Color is the display attribute index of a Food cell (1..FoodColors).
	Color int
}

// Pos returns the cell coordinate.
func (c Cell) Pos() Point { return Point{X: c.X, Y: c.Y} }

// Direction is the heading of the snake.
type Direction uint8

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Delta returns the offset of one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. None has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}
