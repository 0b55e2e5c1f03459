package history

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/otov4its/pysnake/arena"
)

func TestPushPopOrder(t *testing.T) {
	b := New[int](DefaultDepth)
	for i := 1; i <= 3; i++ {
		b.Push(i)
	}
	require.Equal(t, 3, b.Len())

	for want := 3; want >= 1; want-- {
		v, ok := b.Pop()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	require.Equal(t, 0, b.Len())
}

func TestEvictsOldest(t *testing.T) {
	b := New[int](DefaultDepth)
	for i := 1; i <= 12; i++ {
		b.Push(i)
		require.LessOrEqual(t, b.Len(), DefaultDepth)
	}
	require.Equal(t, 11, b.Len())

	var got []int
	for {
		v, ok := b.Pop()
		if !ok {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []int{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2}, got)
}

func TestPopEmpty(t *testing.T) {
	b := New[string](2)
	v, ok := b.Pop()
	require.False(t, ok)
	require.Empty(t, v)
	require.Equal(t, 0, b.Len())

	b.Push("a")
	b.Reset()
	_, ok = b.Pop()
	require.False(t, ok)
}

func TestMinimumDepth(t *testing.T) {
	b := New[int](0)
	require.Equal(t, 1, b.Cap())
	b.Push(1)
	b.Push(2)
	v, _ := b.Pop()
	require.Equal(t, 2, v)
	require.Equal(t, 0, b.Len())
}

func TestArenaSnapshots(t *testing.T) {
	a, err := arena.New(9, 9)
	require.NoError(t, err)
	b := New[arena.Snapshot](DefaultDepth)

	a.Direction = arena.Right
	for i := 0; i < 3; i++ {
		b.Push(a.Snapshot())
		a.Step()
	}

	snap, ok := b.Pop()
	require.True(t, ok)
	restored := arena.Restore(snap)
	require.Equal(t, 2, restored.MovesAll)
	require.Equal(t, arena.Point{X: 6, Y: 4}, restored.Head())
	require.Equal(t, 3, a.MovesAll)
	require.Equal(t, 2, b.Len())
}
