package game

import (
	"context"
	"time"

	"snake-arcade/game/types"
)

// Loop throttles a host frame clock down to the game's step interval.
// Frame is meant to be called on every frame; it only steps once enough
// wall-clock time has passed since the previous step.
type Loop struct {
	game     *Game
	lastStep time.Time
	hasLast  bool
	session  string
}

func NewLoop(g *Game) *Loop {
	return &Loop{game: g}
}

// Frame runs one scheduler tick and reports whether a step executed.
// A disarmed game is skipped and forgets its last step time so the first
// frame after re-arming, or of a new session, steps at once. Paused frames
// stay armed but never mutate.
func (l *Loop) Frame(now time.Time) bool {
	if !l.game.Armed() {
		l.hasLast = false
		return false
	}
	if l.session != l.game.UUID {
		l.session = l.game.UUID
		l.hasLast = false
	}
	if l.game.Phase() == types.Paused {
		return false
	}
	if l.hasLast && now.Sub(l.lastStep) < l.game.Interval() {
		return false
	}
	l.lastStep = now
	l.hasLast = true
	l.game.Step()
	return true
}

// Run feeds frames into Frame until ctx is done or frames is closed.
// onFrame, when set, runs after every frame whether or not it stepped.
func (l *Loop) Run(ctx context.Context, frames <-chan time.Time, onFrame func()) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-frames:
			if !ok {
				return nil
			}
			l.Frame(now)
			if onFrame != nil {
				onFrame()
			}
		}
	}
}
