package arena

import "slices"

type slot struct {
	pos    Point
	filled bool
}

// Body is the snake: a bounded sequence of slots ordered tail to head.
// Slots added by growing start unfilled at the tail end and turn into real
// segments as the head advances.
type Body struct {
	slots []slot
	size  int // capacity, the grow buffer
}

func newBody(head Point) *Body {
	return &Body{
		slots: []slot{{pos: head, filled: true}},
		size:  1,
	}
}

// Len returns the number of filled segments.
func (b *Body) Len() int {
	n := 0
	for _, s := range b.slots {
		if s.filled {
			n++
		}
	}
	return n
}

// Cap returns the length the snake grows into.
func (b *Body) Cap() int { return b.size }

// Head returns the most recently pushed position.
func (b *Body) Head() Point { return b.slots[len(b.slots)-1].pos }

// Tail returns the oldest slot position and whether it is a real segment.
func (b *Body) Tail() (Point, bool) {
	s := b.slots[0]
	return s.pos, s.filled
}

// Grow raises the capacity by delta and inserts delta unfilled slots at the
// tail end.
func (b *Body) Grow(delta int) {
	if delta <= 0 {
		return
	}
	b.size += delta
	pending := make([]slot, delta, delta+len(b.slots))
	b.slots = append(pending, b.slots...)
}

// Push appends a new head, dropping the oldest slot when at capacity.
func (b *Body) Push(head Point) {
	if len(b.slots) == b.size {
		b.slots = slices.Delete(b.slots, 0, 1)
	}
	b.slots = append(b.slots, slot{pos: head, filled: true})
}

// Segments returns the filled positions from head to tail.
func (b *Body) Segments() []Point {
	out := make([]Point, 0, len(b.slots))
	for i := len(b.slots) - 1; i >= 0; i-- {
		if b.slots[i].filled {
			out = append(out, b.slots[i].pos)
		}
	}
	return out
}

func (b *Body) clone() *Body {
	return &Body{slots: slices.Clone(b.slots), size: b.size}
}
