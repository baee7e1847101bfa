package game

import (
	"context"
	"time"
)

// Loop drives a game from a ticker until it is won or the context is done
type Loop struct {
	Game *Game

	// Defaults to the game's configured tick period
	Period time.Duration

	// Optional source of key events, applied between ticks
	Input <-chan InputEvent

	// Optional hook run after every tick, e.g. to render
	OnTick func(*Game)
}

func (loop *Loop) Run(ctx context.Context) error {
	period := loop.Period
	if period <= 0 {
		period = loop.Game.Config().TickPeriod
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-loop.Input:
			if !ok {
				loop.Input = nil
				continue
			}
			loop.Game.HandleInput(event)

		case <-ticker.C:
			running := loop.Game.Update()
			if loop.OnTick != nil {
				loop.OnTick(loop.Game)
			}
			if !running {
				return nil
			}
		}
	}
}

// TickAccumulator converts frame times into whole ticks, for frontends that
// run on their own frame clock
type TickAccumulator struct {
	Period  time.Duration
	pending time.Duration
}

// Advance adds dt of elapsed time and returns how many ticks are now due
func (acc *TickAccumulator) Advance(dt time.Duration) int {
	if acc.Period <= 0 || dt <= 0 {
		return 0
	}

	acc.pending += dt
	ticks := int(acc.pending / acc.Period)
	acc.pending -= time.Duration(ticks) * acc.Period
	return ticks
}

func (acc *TickAccumulator) Reset() {
	acc.pending = 0
}
