// Package history keeps a bounded stack of recent states for rewinding.
package history

// DefaultDepth is how many states a rewind buffer keeps by default.
const DefaultDepth = 11

// Buffer is a bounded FIFO: pushing into a full buffer drops the oldest
// entry, popping takes the newest one.
type Buffer[T any] struct {
	items []T
	depth int
}

// New returns an empty buffer holding at most depth entries.
func New[T any](depth int) *Buffer[T] {
	if depth < 1 {
		depth = 1
	}
	return &Buffer[T]{items: make([]T, 0, depth), depth: depth}
}

// Push appends v, evicting the oldest entry when the buffer is full.
func (b *Buffer[T]) Push(v T) {
	if len(b.items) == b.depth {
		var zero T
		b.items[0] = zero
		b.items = append(b.items[:0], b.items[1:]...)
	}
	b.items = append(b.items, v)
}

// Pop removes and returns the newest entry. It reports false when empty.
func (b *Buffer[T]) Pop() (T, bool) {
	var zero T
	if len(b.items) == 0 {
		return zero, false
	}
	last := len(b.items) - 1
	v := b.items[last]
	b.items[last] = zero
	b.items = b.items[:last]
	return v, true
}

// Len returns the number of stored entries.
func (b *Buffer[T]) Len() int { return len(b.items) }

// Cap returns the maximum number of entries.
func (b *Buffer[T]) Cap() int { return b.depth }

// Reset drops every entry.
func (b *Buffer[T]) Reset() {
	clear(b.items)
	b.items = b.items[:0]
}
