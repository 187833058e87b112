package game

import (
	"snake-arcade/game/types"
)

// Command is a player request fed to Dispatch
type Command interface {
	command()
}

// CmdStart begins a session when none is live
type CmdStart struct{}

// CmdTogglePause flips between running and paused
type CmdTogglePause struct{}

// CmdRestart resets the board, starting a session right away when AutoStart is set
type CmdRestart struct {
	AutoStart bool
}

// CmdDirection queues a heading change for the next step
type CmdDirection struct {
	Dir types.Direction
}

func (CmdStart) command() {}
func (CmdTogglePause) command() {}
func (CmdRestart) command() {}
func (CmdDirection) command() {}

// Dispatch applies cmd. Unknown commands are ignored.
func (g *Game) Dispatch(cmd Command) {
	switch c := cmd.(type) {
	case CmdStart:
		g.Start()
	case CmdTogglePause:
		g.TogglePause()
	case CmdRestart:
		g.Restart(c.AutoStart)
	case CmdDirection:
		g.SetDirection(c.Dir)
	}
}

// StartOrPause is the space bar: start when nothing is live, pause otherwise
func StartOrPause(phase types.Phase) Command {
	if phase == types.Running || phase == types.Paused {
		return CmdTogglePause{}
	}
	return CmdStart{}
}
