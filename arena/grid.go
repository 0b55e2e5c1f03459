package arena

import (
	"fmt"
	"iter"
	"slices"
)

// Grid stores one Cell per coordinate in row-major order and remembers which
// coordinates changed since the last drain.
type Grid struct {
	width   int
	height  int
	cells   []Cell
	touched []Point
	marked  []bool // marked[i] is true while index i is in touched
}

// NewGrid creates a width x height grid of empty cells surrounded by a border.
func NewGrid(width, height int) (*Grid, error) {
	if width < MinSize || height < MinSize {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrArenaTooSmall, width, height, MinSize, MinSize)
	}
	g := &Grid{
		width:   width,
		height:  height,
		cells:   make([]Cell, width*height),
		touched: make([]Point, 0, width*height),
		marked:  make([]bool, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Set(Cell{X: x, Y: y, Kind: Empty})
		}
	}
	for x := 0; x < width; x++ {
		g.Set(Cell{X: x, Y: 0, Kind: Border})
		g.Set(Cell{X: x, Y: height - 1, Kind: Border})
	}
	for y := 0; y < height; y++ {
		g.Set(Cell{X: 0, Y: y, Kind: Border})
		g.Set(Cell{X: width - 1, Y: y, Kind: Border})
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) index(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("arena: cell (%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}
	return y*g.width + x
}

// Set overwrites the cell at (c.X, c.Y) and records the coordinate as touched.
func (g *Grid) Set(c Cell) {
	i := g.index(c.X, c.Y)
	g.cells[i] = c
	g.touch(i, c.Pos())
}

func (g *Grid) touch(i int, p Point) {
	if g.marked[i] {
		return
	}
	g.marked[i] = true
	g.touched = append(g.touched, p)
}

// Get returns the cell at (x, y). Out-of-bounds access panics.
func (g *Grid) Get(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

// CellsOfKind yields every cell whose kind is one of kinds.
func (g *Grid) CellsOfKind(kinds ...Kind) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, c := range g.cells {
			if slices.Contains(kinds, c.Kind) && !yield(c) {
				return
			}
		}
	}
}

// HasKind reports whether at least one cell is of one of kinds.
func (g *Grid) HasKind(kinds ...Kind) bool {
	for range g.CellsOfKind(kinds...) {
		return true
	}
	return false
}

// Count returns the number of cells whose kind is one of kinds.
func (g *Grid) Count(kinds ...Kind) int {
	n := 0
	for range g.CellsOfKind(kinds...) {
		n++
	}
	return n
}

// Touched returns the number of coordinates waiting to be drained.
func (g *Grid) Touched() int { return len(g.touched) }

// DrainTouched hands out the touched coordinates and empties the touched set.
// The returned sequence yields the current cell at each coordinate, in the
// order they were first touched, and can be ranged over only once.
func (g *Grid) DrainTouched() iter.Seq[Cell] {
	pending := g.touched
	g.touched = make([]Point, 0, len(pending))
	for _, p := range pending {
		g.marked[p.Y*g.width+p.X] = false
	}
	used := false
	return func(yield func(Cell) bool) {
		if used {
			return
		}
		used = true
		for _, p := range pending {
			if !yield(g.Get(p.X, p.Y)) {
				return
			}
		}
	}
}

// TouchAll marks every cell touched, for a full redraw.
func (g *Grid) TouchAll() {
	g.touched = g.touched[:0]
	for i := range g.cells {
		g.marked[i] = true
		g.touched = append(g.touched, g.cells[i].Pos())
	}
}

// Clone returns a deep copy sharing no slices with g.
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:   g.width,
		height:  g.height,
		cells:   slices.Clone(g.cells),
		touched: slices.Clone(g.touched),
		marked:  slices.Clone(g.marked),
	}
}
