// Package rules decides what a snake step means: eating, dying, winning,
// and how fast the next tick comes.
package rules

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/otov4its/pysnake/arena"
)

// End-of-episode outcomes. They are expected results, not failures.
var (
	ErrGameOver = errors.New("game over")
	ErrGameWin  = errors.New("game win")

	ErrHitBorder   = fmt.Errorf("%w: hit the border", ErrGameOver)
	ErrHitSelf     = fmt.Errorf("%w: bit itself", ErrGameOver)
	ErrNoMoreSpace = fmt.Errorf("%w: no more space", ErrGameWin)
)

const (
	DefaultInitDelay = 500 * time.Millisecond
	DefaultMinDelay  = 100 * time.Millisecond
	DefaultGrowth    = 3

	tickSpeedup = 0.99
	eatSpeedup  = 0.95
	scorePerEat = 10
)

// Outcome is the result of evaluating one tick.
type Outcome struct {
	Ate bool
	// End is nil while the episode goes on, otherwise ErrHitBorder,
	// ErrHitSelf or ErrNoMoreSpace.
	End error
}

// Over reports whether the episode ended.
func (o Outcome) Over() bool { return o.End != nil }

// Engine holds the pacing state of an episode.
type Engine struct {
	InitDelay time.Duration
	Delay     time.Duration
	MinDelay  time.Duration
	Growth    int
}

// New returns an engine starting at initDelay.
func New(initDelay, minDelay time.Duration, growth int) *Engine {
	return &Engine{
		InitDelay: initDelay,
		Delay:     initDelay,
		MinDelay:  minDelay,
		Growth:    growth,
	}
}

// Default returns an engine with the classic pacing.
func Default() *Engine {
	return New(DefaultInitDelay, DefaultMinDelay, DefaultGrowth)
}

// Evaluate applies the rules to the arena right after a step.
func (e *Engine) Evaluate(a *arena.Arena, r *rand.Rand) Outcome {
	if !a.Grid().HasKind(arena.Empty, arena.Food) {
		return Outcome{End: ErrNoMoreSpace}
	}

	e.Delay = scale(e.Delay, tickSpeedup)

	if a.MovesAll == 1 {
		a.NewFood(r, 1)
	}

	var out Outcome
	switch a.BlockUnderHead.Kind {
	case arena.Food:
		a.Eat(e.Growth)
		a.NewFood(r, 1)
		e.InitDelay = scale(e.InitDelay, eatSpeedup)
		e.Delay = e.InitDelay
		out.Ate = true
	case arena.Border:
		return Outcome{End: ErrHitBorder}
	case arena.Snake:
		return Outcome{End: ErrHitSelf}
	}

	if e.Delay < e.MinDelay {
		e.Delay = e.MinDelay
	}
	return out
}

// Speed returns the tick rate shown to the player.
func (e *Engine) Speed() int {
	if e.Delay <= 0 {
		return 0
	}
	return int(time.Second / e.Delay)
}

// Score returns the points earned in the arena.
func Score(a *arena.Arena) int { return a.EatCount * scorePerEat }

func scale(d time.Duration, f float64) time.Duration {
	return time.Duration(float64(d) * f)
}
