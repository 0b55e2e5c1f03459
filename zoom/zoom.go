// Package zoom maps logical arena cells onto blocks of terminal characters.
package zoom

import (
	"iter"
	"math"
)

const (
	// DefaultFactor is the height/width ratio of a terminal character,
	// which makes a zoomed cell look roughly square.
	DefaultFactor = 15.0 / 8.0
	// DefaultBase is the screen size one auto zoom step corresponds to.
	DefaultBase = 75.0
)

// Zoom is the number of screen rows (Y) and columns (X) one cell covers.
type Zoom struct {
	X, Y   int
	Factor float64
}

// New returns an unzoomed (1x1) scale for the given character ratio.
func New(factor float64) *Zoom {
	return &Zoom{X: 1, Y: 1, Factor: factor}
}

// Default returns an unzoomed scale for DefaultFactor.
func Default() *Zoom { return New(DefaultFactor) }

// In zooms in by n rows.
func (z *Zoom) In(n int) *Zoom {
	z.Y += n
	z.calcX()
	return z
}

// Out zooms out by n rows, never below one.
func (z *Zoom) Out(n int) *Zoom {
	z.Y -= n
	if z.Y < 1 {
		z.Y = 1
	}
	z.calcX()
	return z
}

// Auto zooms in proportionally to the smaller screen dimension, measured in
// square units: the width in columns or the height scaled by Factor.
func (z *Zoom) Auto(screenW, screenH int, base float64) *Zoom {
	value := math.Min(float64(screenW), float64(screenH)*z.Factor)
	return z.In(int(math.Round(value / base)))
}

func (z *Zoom) calcX() {
	if z.Y == 1 {
		z.X = 1
		return
	}
	z.X = int(math.Round(float64(z.Y) * z.Factor))
}

// Copy returns an independent copy of z.
func (z *Zoom) Copy() *Zoom {
	c := *z
	return &c
}

// ArenaSize returns how many cells fit in a screen area of the given size.
func (z *Zoom) ArenaSize(screenW, screenH int) (w, h int) {
	return screenW / z.X, screenH / z.Y
}

// Block yields the (row, col) screen offsets covered by the cell at (x, y).
func (z *Zoom) Block(x, y int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := 0; i < z.Y; i++ {
			for j := 0; j < z.X; j++ {
				if !yield(y*z.Y+i, x*z.X+j) {
					return
				}
			}
		}
	}
}
