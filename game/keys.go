package game

import (
	"fmt"
	"strings"
)

// KeyCode is a terminal independent key identifier.
type KeyCode uint8

const (
	KeyNone KeyCode = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyCtrlC
	KeyResize
	// KeyOther is any key the game has no name for.
	KeyOther
)

// Key is one input event. Rune is set only for KeyRune.
type Key struct {
	Code KeyCode
	Rune rune
}

// RuneKey returns the key for a printable character.
func RuneKey(r rune) Key { return Key{Code: KeyRune, Rune: r} }

// Action is what a key does in the game.
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionNewGame
	ActionPause
	ActionZoomIn
	ActionZoomOut
	ActionAutoZoom
	ActionRewind
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionResize
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionNewGame:
		return "new game"
	case ActionPause:
		return "pause"
	case ActionZoomIn:
		return "zoom in"
	case ActionZoomOut:
		return "zoom out"
	case ActionAutoZoom:
		return "auto zoom"
	case ActionRewind:
		return "rewind"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionResize:
		return "resize"
	default:
		return "none"
	}
}

// move reports whether the action steers the snake.
func (a Action) move() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// Bindings maps keys to actions.
type Bindings struct {
	actions map[Key]Action
	first   map[Action]rune // first configured character, for the menu line
}

// NewBindings builds the key map from the configured characters. Arrow keys,
// resize events, Esc and Ctrl-C are always bound.
func NewBindings(kc KeysConfig) (Bindings, error) {
	b := Bindings{
		actions: map[Key]Action{
			{Code: KeyUp}:     ActionUp,
			{Code: KeyDown}:   ActionDown,
			{Code: KeyLeft}:   ActionLeft,
			{Code: KeyRight}:  ActionRight,
			{Code: KeyResize}: ActionResize,
			{Code: KeyEscape}: ActionQuit,
			{Code: KeyCtrlC}:  ActionQuit,
		},
		first: make(map[Action]rune),
	}
	for _, bind := range []struct {
		chars  string
		action Action
	}{
		{kc.Quit, ActionQuit},
		{kc.NewGame, ActionNewGame},
		{kc.Pause, ActionPause},
		{kc.ZoomIn, ActionZoomIn},
		{kc.ZoomOut, ActionZoomOut},
		{kc.AutoZoom, ActionAutoZoom},
		{kc.Rewind, ActionRewind},
	} {
		chars := strings.TrimSpace(bind.chars)
		if chars == "" {
			return Bindings{}, fmt.Errorf("no key bound to %s", bind.action)
		}
		for _, r := range chars {
			k := RuneKey(r)
			if prev, ok := b.actions[k]; ok && prev != bind.action {
				return Bindings{}, fmt.Errorf("key %q bound to both %s and %s", r, prev, bind.action)
			}
			b.actions[k] = bind.action
			if _, ok := b.first[bind.action]; !ok {
				b.first[bind.action] = r
			}
		}
	}
	return b, nil
}

// Action returns the action bound to k, or ActionNone.
func (b Bindings) Action(k Key) Action { return b.actions[k] }

// Rune returns the first character bound to a, for display.
func (b Bindings) Rune(a Action) rune { return b.first[a] }
