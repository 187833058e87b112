package game

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// Cue names a sound effect the output should play
type Cue string

const (
	CueEat   Cue = "eat"
	CueCrash Cue = "crash"
)

// Overlay messages
const (
	MsgStart    = "Press Space to start"
	MsgPaused   = "Paused"
	MsgGameOver = "Game over! Try again?"
	MsgWon      = "Board cleared!"
)

// Snapshot is a read-only copy of the game state handed to an Output.
// Snake is head first and owned by the receiver.
type Snapshot struct {
	Grid      types.Grid
	Snake     []types.Point
	Direction types.Direction
	Color     entity.Color
	Food      types.Point
	Score     int
	Best      int
	Speed     float64
	Phase     types.Phase
	Won       bool
}

// HasFood reports whether a food cell is on the board
func (s Snapshot) HasFood() bool {
	return s.Grid.InBounds(s.Food)
}

// Output is everything the simulation draws, plays or reports to
type Output interface {
	Render(snap Snapshot)
	PlayCue(cue Cue)
	ReportScore(score int)
	ReportSpeed(multiplier float64)
	ReportBestScore(best int)
	ShowOverlay(message string)
	HideOverlay()
}

// NopOutput discards everything
type NopOutput struct{}

func (NopOutput) Render(Snapshot) {}
func (NopOutput) PlayCue(Cue) {}
func (NopOutput) ReportScore(int) {}
func (NopOutput) ReportSpeed(float64) {}
func (NopOutput) ReportBestScore(int) {}
func (NopOutput) ShowOverlay(string) {}
func (NopOutput) HideOverlay() {}
