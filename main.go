package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"time"

	"snake-arcade/audio"
	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/terminal"
	"snake-arcade/ui"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run wires the game together and returns the process exit code
func run(args []string) int {
	cfg, err := parseFlags(args, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 2
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	sound := initSound(cfg.Mute)
	defer sound.Cleanup()

	opts := game.Options{
		Grid:         types.NewGrid(cfg.GridSize),
		BaseInterval: cfg.BaseInterval(),
		Seed:         cfg.Seed,
		Store:        manager.NewFileStore(filepath.Join(cfg.DataDir, "gamestats.json")),
	}

	if cfg.Terminal {
		err = runTerminal(opts, sound)
	} else {
		runWindow(cfg, opts, sound)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 1
	}
	return 0
}

// initSound returns a ready sound manager; on failure or when muted the
// manager stays uninitialised and every cue is dropped.
func initSound(mute bool) *audio.SoundManager {
	sm := audio.NewSoundManager()
	if mute {
		return sm
	}
	if err := sm.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	return sm
}

func runWindow(cfg Config, opts game.Options, sound audio.Player) {
	w, h := ui.WindowSize(int32(cfg.CellSize), opts.Grid.Width, opts.Grid.Height)
	rl.InitWindow(w, h, "Snake")
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer(int32(cfg.CellSize), sound)
	g := game.NewGame(opts, renderer)
	loop := game.NewLoop(g)

	for !rl.WindowShouldClose() {
		if !ui.HandleInput(g) {
			break
		}
		loop.Frame(time.Now())
		renderer.Draw()
	}
}

func runTerminal(opts game.Options, sound audio.Player) (err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initialize terminal screen")
	}

	// Restore the terminal even if the game crashes
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			err = errors.Errorf("crashed: %v\nStack Trace:\n%s", r, debug.Stack())
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	renderer := terminal.NewRenderer(screen, sound)
	g := game.NewGame(opts, renderer)

	if err := terminal.Run(ctx, screen, g, renderer); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
