// Package game runs the snake: it owns the arena, reads keys from a Surface,
// applies the rules every tick and draws the result.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/otov4its/pysnake/arena"
	"github.com/otov4its/pysnake/history"
	"github.com/otov4its/pysnake/rules"
	"github.com/otov4its/pysnake/zoom"
)

// ErrQuit is returned by Tick when the player asked to quit.
var ErrQuit = errors.New("quit")

// ErrScreenTooSmall is returned when the terminal cannot hold the layout.
var ErrScreenTooSmall = errors.New("screen too small")

const quitPause = 500 * time.Millisecond

// Stats summarises a session.
type Stats struct {
	Games     int
	Wins      int
	Losses    int
	BestScore int
}

// Game is one session: a sequence of episodes on one surface.
type Game struct {
	surface Surface
	cfg     Config
	keys    Bindings
	glyphs  map[arena.Kind]rune
	log     *log.Logger
	rng     *rand.Rand
	sleep   func(time.Duration)

	zoom    *zoom.Zoom
	arena   *arena.Arena
	rules   *rules.Engine
	history *history.Buffer[arena.Snapshot]

	screenW, screenH int
	areaW, areaH     int

	stats    Stats
	tickTime time.Duration
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sends game events to l.
func WithLogger(l *log.Logger) Option { return func(g *Game) { g.log = l } }

// WithSleep replaces time.Sleep for the tick delay.
func WithSleep(f func(time.Duration)) Option { return func(g *Game) { g.sleep = f } }

// WithRand sets the random source used for food.
func WithRand(r *rand.Rand) Option { return func(g *Game) { g.rng = r } }

// New starts the first episode on s with an automatic zoom.
func New(s Surface, cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	keys, err := NewBindings(cfg.Keys)
	if err != nil {
		return nil, err
	}
	g := &Game{
		surface: s,
		cfg:     cfg,
		keys:    keys,
		glyphs: map[arena.Kind]rune{
			arena.Snake:  glyph(cfg.Glyphs.Snake),
			arena.Food:   glyph(cfg.Glyphs.Food),
			arena.Empty:  glyph(cfg.Glyphs.Empty),
			arena.Border: glyph(cfg.Glyphs.Border),
		},
		log:     log.New(io.Discard, "", 0),
		sleep:   time.Sleep,
		history: history.New[arena.Snapshot](cfg.Game.Rewinds),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		seed := cfg.Game.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		g.rng = rand.New(rand.NewPCG(seed, 0))
	}
	if err := g.Reset(nil); err != nil {
		return nil, err
	}
	return g, nil
}

// Stats returns the session statistics so far.
func (g *Game) Stats() Stats { return g.stats }

// Arena returns the live arena.
func (g *Game) Arena() *arena.Arena { return g.arena }

// Zoom returns the current zoom.
func (g *Game) Zoom() zoom.Zoom { return *g.zoom }

// TickTime returns how long the last tick took, excluding the delay.
func (g *Game) TickTime() time.Duration { return g.tickTime }

// Reset starts a new episode sized to the current screen. A nil z picks the
// zoom automatically. On error the current episode is left untouched.
func (g *Game) Reset(z *zoom.Zoom) error {
	w, h := g.surface.Size()
	if w < minScreen || h < minScreen {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrScreenTooSmall, w, h, minScreen, minScreen)
	}
	areaW, areaH := w-2, h-2
	if z == nil {
		z = zoom.New(g.cfg.Zoom.Factor).Auto(w, h, g.cfg.Zoom.AutoBase)
	}
	aw, ah := z.ArenaSize(areaW, areaH)
	a, err := arena.New(aw, ah)
	if err != nil {
		return fmt.Errorf("zoom %dx%d: %w", z.Y, z.X, err)
	}

	g.recordScore()
	g.screenW, g.screenH = w, h
	g.areaW, g.areaH = areaW, areaH
	g.zoom = z
	g.arena = a
	g.rules = rules.New(g.cfg.initDelay(), g.cfg.minDelay(), g.cfg.Game.Growth)
	g.history.Reset()
	g.stats.Games++
	g.log.Printf("new game %d: screen %dx%d, zoom %dx%d, arena %dx%d", g.stats.Games, w, h, z.Y, z.X, aw, ah)

	g.surface.Clear()
	g.renderMenu()
	g.render()
	return nil
}

// Run ticks until the player quits, an error occurs or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.Tick(); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
}

// Tick runs one turn: snapshot, input, step, draw, rules, delay.
func (g *Game) Tick() error {
	start := time.Now()
	g.history.Push(g.arena.Snapshot())

	if k, ok := g.surface.PollKey(); ok {
		if err := g.perform(g.keys.Action(k)); err != nil {
			return err
		}
	}

	if g.arena.Direction == arena.None {
		g.arena.Direction = arena.Right
	}
	g.arena.Step()
	g.render()

	out := g.rules.Evaluate(g.arena, g.rng)
	if out.Ate {
		g.log.Printf("ate: score %d, length %d, speed %d", rules.Score(g.arena), g.arena.MaxLen(), g.rules.Speed())
		g.renderStats()
		g.surface.Commit()
	}
	if out.Over() {
		if err := g.endEpisode(out.End); err != nil {
			return err
		}
	}

	g.tickTime = time.Since(start)
	g.sleep(g.rules.Delay)
	return nil
}

// perform carries out one action.
func (g *Game) perform(act Action) error {
	switch act {
	case ActionQuit:
		return g.quit()
	case ActionNewGame:
		return g.Reset(g.zoom.Copy())
	case ActionPause:
		return g.pause()
	case ActionZoomIn:
		return g.zoomIn()
	case ActionZoomOut:
		return g.Reset(g.zoom.Copy().Out(1))
	case ActionAutoZoom, ActionResize:
		return g.resize()
	case ActionRewind:
		return g.rewind()
	case ActionUp:
		g.arena.Direction = arena.Up
	case ActionDown:
		g.arena.Direction = arena.Down
	case ActionLeft:
		g.arena.Direction = arena.Left
	case ActionRight:
		g.arena.Direction = arena.Right
	}
	return nil
}

func (g *Game) quit() error {
	g.recordScore()
	g.popup("Bye!")
	g.sleep(quitPause)
	return ErrQuit
}

// zoomIn falls back to the previous zoom when the arena would get too small.
func (g *Game) zoomIn() error {
	prev := g.zoom.Copy()
	err := g.Reset(g.zoom.Copy().In(1))
	if errors.Is(err, arena.ErrArenaTooSmall) {
		g.log.Printf("zoom in: %v, keeping %dx%d", err, prev.Y, prev.X)
		return g.Reset(prev)
	}
	return err
}

// resize restarts with an automatic zoom. While the screen is too small it
// waits for another resize or quit.
func (g *Game) resize() error {
	for {
		err := g.Reset(nil)
		if !errors.Is(err, arena.ErrArenaTooSmall) && !errors.Is(err, ErrScreenTooSmall) {
			return err
		}
		g.log.Printf("resize: %v", err)
		g.surface.Clear()
		g.surface.Commit()
		if err := g.waitFor(ActionQuit, ActionResize); err != nil {
			return err
		}
	}
}

// waitFor blocks until one of acts is pressed. Quit is performed, any other
// action just returns.
func (g *Game) waitFor(acts ...Action) error {
	for {
		act := g.keys.Action(g.surface.WaitKey())
		for _, a := range acts {
			if a != act {
				continue
			}
			if act == ActionQuit {
				return g.quit()
			}
			return nil
		}
	}
}

func (g *Game) pause() error {
	g.popup("Pause\npress any key")
	act := g.keys.Action(g.surface.WaitKey())
	if act == ActionResize {
		return g.resize()
	}
	g.closePopup()
	return nil
}

// rewind restores the newest snapshot and keeps going back while the rewind
// key is pressed.
func (g *Game) rewind() error {
	for {
		if snap, ok := g.history.Pop(); ok {
			g.arena = arena.Restore(snap)
			g.arena.Grid().TouchAll()
			g.render()
			g.log.Printf("rewind to move %d, %d left", snap.Moves(), g.history.Len())
		}
		g.popup(fmt.Sprintf("Rewind mode (%d)\npress '%c'", g.history.Len(), g.keys.Rune(ActionRewind)))
		switch g.keys.Action(g.surface.WaitKey()) {
		case ActionRewind:
			continue
		case ActionResize:
			return g.resize()
		}
		g.closePopup()
		return nil
	}
}

// endEpisode shows the result and waits for a key that leaves it. Steering
// and pause keys are ignored.
func (g *Game) endEpisode(end error) error {
	msg := "Game Over"
	if errors.Is(end, rules.ErrGameWin) {
		msg = "Win!"
		g.stats.Wins++
	} else {
		g.stats.Losses++
	}
	g.recordScore()
	g.log.Printf("episode over: %v, score %d after %d moves", end, rules.Score(g.arena), g.arena.MovesAll)

	g.surface.Beep()
	g.popup(msg)
	for {
		act := g.keys.Action(g.surface.WaitKey())
		if act == ActionNone || act == ActionPause || act.move() {
			continue
		}
		return g.perform(act)
	}
}

func (g *Game) recordScore() {
	if g.arena == nil {
		return
	}
	g.stats.BestScore = max(g.stats.BestScore, rules.Score(g.arena))
}
