package terminal

import (
	"unicode"

	"snake-arcade/game"
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
)

// IsQuit reports whether ev asks to leave the game
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return unicode.ToLower(ev.Rune()) == 'q'
	}
	return false
}

// CommandForKey maps a key event to a game command. Unbound keys return false.
func CommandForKey(ev *tcell.EventKey, phase types.Phase) (game.Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.CmdDirection{Dir: types.Up}, true
	case tcell.KeyDown:
		return game.CmdDirection{Dir: types.Down}, true
	case tcell.KeyLeft:
		return game.CmdDirection{Dir: types.Left}, true
	case tcell.KeyRight:
		return game.CmdDirection{Dir: types.Right}, true
	case tcell.KeyEnter:
		return game.CmdStart{}, true
	case tcell.KeyRune:
		return commandForRune(ev.Rune(), phase)
	}
	return nil, false
}

func commandForRune(ch rune, phase types.Phase) (game.Command, bool) {
	switch unicode.ToLower(ch) {
	case 'w':
		return game.CmdDirection{Dir: types.Up}, true
	case 's':
		return game.CmdDirection{Dir: types.Down}, true
	case 'a':
		return game.CmdDirection{Dir: types.Left}, true
	case 'd':
		return game.CmdDirection{Dir: types.Right}, true
	case ' ':
		return game.StartOrPause(phase), true
	case 'p':
		return game.CmdTogglePause{}, true
	case 'r':
		return game.CmdRestart{AutoStart: true}, true
	}
	return nil, false
}
