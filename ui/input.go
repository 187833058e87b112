package ui

import (
	"snake-arcade/game"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CommandForKey maps a raylib key code to a game command. Keys without a
// binding return false.
func CommandForKey(key int32, phase types.Phase) (game.Command, bool) {
	switch key {
	case rl.KeyUp, rl.KeyW:
		return game.CmdDirection{Dir: types.Up}, true
	case rl.KeyDown, rl.KeyS:
		return game.CmdDirection{Dir: types.Down}, true
	case rl.KeyLeft, rl.KeyA:
		return game.CmdDirection{Dir: types.Left}, true
	case rl.KeyRight, rl.KeyD:
		return game.CmdDirection{Dir: types.Right}, true
	case rl.KeySpace:
		return game.StartOrPause(phase), true
	case rl.KeyEnter:
		return game.CmdStart{}, true
	case rl.KeyP:
		return game.CmdTogglePause{}, true
	case rl.KeyR:
		return game.CmdRestart{AutoStart: true}, true
	}
	return nil, false
}

// HandleInput drains the key queue for this frame into g. It reports
// false when the player asked to quit.
func HandleInput(g *game.Game) bool {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if key == rl.KeyQ {
			return false
		}
		if cmd, ok := CommandForKey(key, g.Phase()); ok {
			g.Dispatch(cmd)
		}
	}
	return true
}
