package terminal

import (
	"context"
	"time"

	"snake-arcade/game"

	"github.com/gdamore/tcell/v2"
)

// frameInterval is the host frame clock, about 60 fps
const frameInterval = 16 * time.Millisecond

// Run drives g on screen until the player quits or ctx is done. Key events
// are drained on the frame goroutine, so the game state is never touched
// concurrently.
func Run(ctx context.Context, screen tcell.Screen, g *game.Game, r *Renderer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := pollEvents(ctx, screen)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	quit := false
	r.Draw()
	err := game.NewLoop(g).Run(ctx, ticker.C, func() {
		if !drainEvents(events, g, r) {
			quit = true
			cancel()
		}
		r.Draw()
	})
	if quit {
		return nil
	}
	return err
}

// pollEvents forwards screen events until the screen is finalised or ctx is done
func pollEvents(ctx context.Context, screen tcell.Screen) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events
}

// drainEvents applies every queued event; false means quit
func drainEvents(events <-chan tcell.Event, g *game.Game, r *Renderer) bool {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			if !handleEvent(ev, g, r) {
				return false
			}
		default:
			return true
		}
	}
}

// handleEvent applies one terminal event; false means quit
func handleEvent(ev tcell.Event, g *game.Game, r *Renderer) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev) {
			return false
		}
		if cmd, ok := CommandForKey(ev, g.Phase()); ok {
			g.Dispatch(cmd)
		}
	case *tcell.EventResize:
		r.screen.Sync()
		r.Draw()
	}
	return true
}
