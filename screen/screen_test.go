package screen

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/otov4its/pysnake/game"
)

func newSim(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	sc, err := Wrap(sim)
	require.NoError(t, err)
	sim.SetSize(20, 10)
	t.Cleanup(sc.Close)
	return sc, sim
}

// nextKey waits for a key, skipping resize events the screen may post on its own.
func nextKey(sc *Screen) game.Key {
	for {
		k := sc.WaitKey()
		if k.Code != game.KeyResize {
			return k
		}
	}
}

func TestDrawCell(t *testing.T) {
	sc, sim := newSim(t)
	w, h := sc.Size()
	require.Equal(t, 20, w)
	require.Equal(t, 10, h)

	sc.DrawCell(2, 5, 'O', game.AttrDefault)
	sc.DrawCell(3, 6, '@', game.FoodAttr(2))
	sc.Commit()

	cells, cw, _ := sim.GetContents()
	require.Equal(t, []rune{'O'}, cells[2*cw+5].Runes)
	at := cells[3*cw+6]
	require.Equal(t, []rune{'@'}, at.Runes)
	fg, _, _ := at.Style.Decompose()
	require.Equal(t, tcell.ColorTeal, fg)

	sc.Clear()
	sc.Commit()
	cells, cw, _ = sim.GetContents()
	require.NotEqual(t, []rune{'O'}, cells[2*cw+5].Runes)
}

func TestInjectedKeys(t *testing.T) {
	sc, sim := newSim(t)

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.Equal(t, game.RuneKey('q'), nextKey(sc))

	sim.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	require.Equal(t, game.Key{Code: game.KeyLeft}, nextKey(sc))

	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	require.Equal(t, game.Key{Code: game.KeyOther}, nextKey(sc))
}

func TestTranslate(t *testing.T) {
	sc, _ := newSim(t)

	for _, tc := range []struct {
		ev   tcell.Event
		want game.Key
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.Key{Code: game.KeyUp}},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), game.Key{Code: game.KeyDown}},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), game.Key{Code: game.KeyRight}},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.Key{Code: game.KeyEscape}},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), game.Key{Code: game.KeyCtrlC}},
		{tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), game.RuneKey('+')},
		{tcell.NewEventResize(30, 12), game.Key{Code: game.KeyResize}},
	} {
		got, ok := sc.translate(tc.ev)
		require.True(t, ok)
		require.Equal(t, tc.want, got)
	}

	_, ok := sc.translate(tcell.NewEventInterrupt(nil))
	require.False(t, ok)
}

func TestPollKeyEmpty(t *testing.T) {
	sc, _ := newSim(t)
	for {
		k, ok := sc.PollKey()
		if !ok {
			break
		}
		require.Equal(t, game.KeyResize, k.Code)
	}
}

func TestStylesCoverFoodColors(t *testing.T) {
	st := defaultStyles()
	for c := 1; c <= 6; c++ {
		_, ok := st[game.FoodAttr(c)]
		require.True(t, ok, "food color %d", c)
	}
	_, _, attrs := st[game.AttrPopup].Decompose()
	require.NotZero(t, attrs&tcell.AttrReverse)
}
