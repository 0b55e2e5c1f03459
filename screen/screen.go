// Package screen is the tcell terminal behind the game.
package screen

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/otov4its/pysnake/game"
)

// Screen adapts a tcell.Screen to game.Surface. A goroutine pumps terminal
// events into a channel so keys can be polled without blocking.
type Screen struct {
	s      tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	once   sync.Once
	styles map[game.Attr]tcell.Style
}

var _ game.Surface = (*Screen)(nil)

// New opens the terminal.
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return Wrap(s)
}

// Wrap initialises s and starts reading its events.
func Wrap(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.HideCursor()
	s.Clear()

	sc := &Screen{
		s:      s,
		events: make(chan tcell.Event, 32),
		done:   make(chan struct{}),
		styles: defaultStyles(),
	}
	go sc.pump()
	return sc, nil
}

func defaultStyles() map[game.Attr]tcell.Style {
	st := map[game.Attr]tcell.Style{
		game.AttrDefault: tcell.StyleDefault,
		game.AttrStats:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		game.AttrMenu:    tcell.StyleDefault.Foreground(tcell.ColorTeal),
		game.AttrPopup:   tcell.StyleDefault.Reverse(true),
	}
	for i, c := range []tcell.Color{
		tcell.ColorBlue,
		tcell.ColorTeal,
		tcell.ColorGreen,
		tcell.ColorPurple,
		tcell.ColorMaroon,
		tcell.ColorOlive,
	} {
		st[game.FoodAttr(i+1)] = tcell.StyleDefault.Foreground(c)
	}
	return st
}

func (sc *Screen) pump() {
	for {
		ev := sc.s.PollEvent()
		if ev == nil {
			close(sc.events)
			return
		}
		select {
		case sc.events <- ev:
		case <-sc.done:
			return
		}
	}
}

// Close restores the terminal.
func (sc *Screen) Close() {
	sc.once.Do(func() {
		close(sc.done)
		sc.s.Fini()
	})
}

func (sc *Screen) Size() (int, int) { return sc.s.Size() }

func (sc *Screen) DrawCell(row, col int, glyph rune, attr game.Attr) {
	st, ok := sc.styles[attr]
	if !ok {
		st = tcell.StyleDefault
	}
	sc.s.SetContent(col, row, glyph, nil, st)
}

func (sc *Screen) Commit() { sc.s.Show() }
func (sc *Screen) Clear()  { sc.s.Clear() }
func (sc *Screen) Beep()   { _ = sc.s.Beep() }

// PollKey returns the next queued key. Events that are not keys are dropped.
func (sc *Screen) PollKey() (game.Key, bool) {
	for {
		select {
		case ev, ok := <-sc.events:
			if !ok {
				return game.Key{Code: game.KeyCtrlC}, true
			}
			if k, ok := sc.translate(ev); ok {
				return k, true
			}
		default:
			return game.Key{}, false
		}
	}
}

// WaitKey blocks for the next key. A closed screen reads as Ctrl-C.
func (sc *Screen) WaitKey() game.Key {
	for ev := range sc.events {
		if k, ok := sc.translate(ev); ok {
			return k
		}
	}
	return game.Key{Code: game.KeyCtrlC}
}

func (sc *Screen) translate(ev tcell.Event) (game.Key, bool) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		sc.s.Sync()
		return game.Key{Code: game.KeyResize}, true
	case *tcell.EventKey:
		return translateKey(e), true
	}
	return game.Key{}, false
}

func translateKey(e *tcell.EventKey) game.Key {
	switch e.Key() {
	case tcell.KeyRune:
		return game.RuneKey(e.Rune())
	case tcell.KeyUp:
		return game.Key{Code: game.KeyUp}
	case tcell.KeyDown:
		return game.Key{Code: game.KeyDown}
	case tcell.KeyLeft:
		return game.Key{Code: game.KeyLeft}
	case tcell.KeyRight:
		return game.Key{Code: game.KeyRight}
	case tcell.KeyEscape:
		return game.Key{Code: game.KeyEscape}
	case tcell.KeyCtrlC:
		return game.Key{Code: game.KeyCtrlC}
	}
	return game.Key{Code: game.KeyOther}
}
