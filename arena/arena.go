package arena

import (
	"math/rand/v2"
)

// Arena is the grid plus the snake and its movement counters.
type Arena struct {
	grid *Grid
	body *Body

	MovesAll     int
	MovesFromEat int
	EatCount     int

	Direction     Direction
	PrevDirection Direction

	// BlockUnderHead is the cell the head moved onto, as it was before the
	// head overwrote it.
	BlockUnderHead Cell
	// LastTail is the position vacated by the last step; ok is false when
	// the snake was still growing and nothing was vacated.
	LastTail   Point
	lastTailOK bool
}

// New creates a width x height arena with a one segment snake in the middle.
func New(width, height int) (*Arena, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	head := Point{X: width / 2, Y: height / 2}
	a := &Arena{
		grid: g,
		body: newBody(head),
	}
	g.Set(Cell{X: head.X, Y: head.Y, Kind: Snake})
	a.BlockUnderHead = Cell{X: head.X, Y: head.Y, Kind: Empty}
	return a, nil
}

func (a *Arena) Grid() *Grid   { return a.grid }
func (a *Arena) Width() int    { return a.grid.width }
func (a *Arena) Height() int   { return a.grid.height }
func (a *Arena) Head() Point   { return a.body.Head() }
func (a *Arena) Len() int      { return a.body.Len() }
func (a *Arena) MaxLen() int   { return a.body.Cap() }
func (a *Arena) Body() []Point { return a.body.Segments() }

// Tail returns the oldest filled segment.
func (a *Arena) Tail() Point {
	segs := a.body.Segments()
	return segs[len(segs)-1]
}

// Vacated returns the position freed by the last step, if any.
func (a *Arena) Vacated() (Point, bool) { return a.LastTail, a.lastTailOK }

// Grow makes the snake delta segments longer over the next delta steps.
func (a *Arena) Grow(delta int) { a.body.Grow(delta) }

// Eat grows the snake by count and updates the eat counters.
func (a *Arena) Eat(count int) {
	a.Grow(count)
	a.MovesFromEat = 0
	a.EatCount++
}

// Step moves the snake one cell in its direction.
func (a *Arena) Step() {
	a.LastTail, a.lastTailOK = a.body.Tail()

	// Reversing onto the neck would end the game on a double key press.
	// Only filled segments count, so a just-fed one segment snake may turn back.
	if a.body.Len() > 1 && a.Direction != None && a.PrevDirection.Opposite() == a.Direction {
		a.Direction = a.PrevDirection
	}
	a.PrevDirection = a.Direction

	head := a.body.Head()
	dx, dy := a.Direction.Delta()
	head.X += dx
	head.Y += dy
	a.body.Push(head)

	if a.lastTailOK {
		a.grid.Set(Cell{X: a.LastTail.X, Y: a.LastTail.Y, Kind: Empty})
	}
	a.BlockUnderHead = a.grid.Get(head.X, head.Y)
	a.grid.Set(Cell{X: head.X, Y: head.Y, Kind: Snake})

	a.MovesAll++
	a.MovesFromEat++
}

// NewFood places up to n food cells on random empty cells. It does nothing
// when no empty cell is left.
func (a *Arena) NewFood(r *rand.Rand, n int) {
	var empty []Cell
	for c := range a.grid.CellsOfKind(Empty) {
		empty = append(empty, c)
	}
	r.Shuffle(len(empty), func(i, j int) { empty[i], empty[j] = empty[j], empty[i] })
	for _, c := range empty[:min(n, len(empty))] {
		a.grid.Set(Cell{X: c.X, Y: c.Y, Kind: Food, Color: 1 + r.IntN(FoodColors)})
	}
}

// Clone returns a deep copy of the arena.
func (a *Arena) Clone() *Arena {
	c := *a
	c.grid = a.grid.Clone()
	c.body = a.body.clone()
	return &c
}

// Snapshot is a frozen copy of an arena, used for rewind.
type Snapshot struct {
	a *Arena
}

// Snapshot captures the whole arena state.
func (a *Arena) Snapshot() Snapshot { return Snapshot{a: a.Clone()} }

// Restore returns a new live arena built from s. The snapshot stays intact
// and can be restored again.
func Restore(s Snapshot) *Arena {
	if s.a == nil {
		panic("arena: restore from empty snapshot")
	}
	return s.a.Clone()
}

// Moves returns the number of steps the snapshotted arena had taken.
func (s Snapshot) Moves() int {
	if s.a == nil {
		return 0
	}
	return s.a.MovesAll
}
