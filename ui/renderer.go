package ui

import (
	"fmt"

	"snake-arcade/audio"
	"snake-arcade/game"
	"snake-arcade/game/entity"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10  // Padding around game area
	statsPanel    = 200 // Width of the score panel right of the board
	fontSize      = 20
	lineHeight    = 28
)

var (
	backgroundTop    = rl.NewColor(5, 12, 17, 255)
	backgroundBottom = rl.NewColor(2, 3, 8, 255)
	gridLine         = rl.NewColor(255, 255, 255, 10)
	foodColor        = rl.NewColor(255, 77, 109, 255)
	panelColor       = rl.NewColor(12, 18, 26, 255)
	labelColor       = rl.NewColor(140, 150, 165, 255)
)

// Renderer draws the board in a raylib window. It implements game.Output:
// the game pushes snapshots and figures into it, and Draw paints the latest
// ones once per frame.
type Renderer struct {
	cellSize int32
	offsetX  int32
	offsetY  int32

	snap        game.Snapshot
	score       int
	best        int
	speed       float64
	overlay     string
	showOverlay bool

	sound audio.Player
}

func NewRenderer(cellSize int32, sound audio.Player) *Renderer {
	if sound == nil {
		sound = audio.Silent{}
	}
	return &Renderer{
		cellSize: cellSize,
		offsetX:  borderPadding,
		offsetY:  borderPadding,
		speed:    1,
		sound:    sound,
	}
}

// WindowSize returns the window dimensions needed for a board of cols x rows cells
func WindowSize(cellSize int32, cols, rows int) (int32, int32) {
	w := cellSize*int32(cols) + borderPadding*2 + statsPanel
	h := cellSize*int32(rows) + borderPadding*2
	return w, h
}

func (r *Renderer) Render(snap game.Snapshot) {
	r.snap = snap
}

func (r *Renderer) PlayCue(cue game.Cue) {
	r.sound.Play(string(cue))
}

func (r *Renderer) ReportScore(score int) {
	r.score = score
}

func (r *Renderer) ReportSpeed(multiplier float64) {
	r.speed = multiplier
}

func (r *Renderer) ReportBestScore(best int) {
	r.best = best
}

func (r *Renderer) ShowOverlay(message string) {
	r.overlay = message
	r.showOverlay = true
}

func (r *Renderer) HideOverlay() {
	r.overlay = ""
	r.showOverlay = false
}

// Draw paints the last rendered snapshot and the stats panel
func (r *Renderer) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	boardW := r.cellSize * int32(r.snap.Grid.Width)
	boardH := r.cellSize * int32(r.snap.Grid.Height)

	rl.DrawRectangleGradientV(r.offsetX, r.offsetY, boardW, boardH, backgroundTop, backgroundBottom)
	r.drawGrid(boardW, boardH)
	r.drawSnake()
	r.drawFood()
	r.drawStatsPanel(r.offsetX + boardW + borderPadding)

	if r.showOverlay {
		r.drawOverlay(boardW, boardH)
	}
	rl.EndDrawing()
}

func (r *Renderer) drawGrid(boardW, boardH int32) {
	for i := 0; i <= r.snap.Grid.Width; i++ {
		x := r.offsetX + int32(i)*r.cellSize
		rl.DrawLine(x, r.offsetY, x, r.offsetY+boardH, gridLine)
	}
	for i := 0; i <= r.snap.Grid.Height; i++ {
		y := r.offsetY + int32(i)*r.cellSize
		rl.DrawLine(r.offsetX, y, r.offsetX+boardW, y, gridLine)
	}
}

func (r *Renderer) drawSnake() {
	body := r.snap.Snake
	base := bodyColor(r.snap.Color)
	for i, p := range body {
		color := rl.Fade(base, segmentAlpha(i, len(body)))
		rl.DrawRectangle(
			r.offsetX+int32(p.X)*r.cellSize+2,
			r.offsetY+int32(p.Y)*r.cellSize+2,
			r.cellSize-4, r.cellSize-4, color)
	}
}

func (r *Renderer) drawFood() {
	if !r.snap.HasFood() {
		return
	}
	x := float32(r.offsetX + int32(r.snap.Food.X)*r.cellSize)
	y := float32(r.offsetY + int32(r.snap.Food.Y)*r.cellSize)
	size := float32(r.cellSize)

	// Soft glow behind the pellet
	rl.DrawRectangleRounded(rl.NewRectangle(x, y, size, size), 0.6, 8, rl.Fade(foodColor, 0.25))
	rl.DrawRectangleRounded(rl.NewRectangle(x+4, y+4, size-8, size-8), 0.5, 8, foodColor)
}

func (r *Renderer) drawStatsPanel(statsX int32) {
	screenH := int32(rl.GetScreenHeight())
	rl.DrawRectangle(statsX-5, 0, statsPanel+5, screenH, panelColor)

	statsY := int32(borderPadding)
	for _, line := range statsLines(r.score, r.best, r.speed) {
		rl.DrawText(line.label, statsX+5, statsY, fontSize-4, labelColor)
		statsY += lineHeight - 8
		rl.DrawText(line.value, statsX+5, statsY, fontSize+4, rl.White)
		statsY += lineHeight + 8
	}

	statsY += lineHeight / 2
	for _, help := range helpLines {
		rl.DrawText(help, statsX+5, statsY, fontSize-6, labelColor)
		statsY += lineHeight - 8
	}
}

func (r *Renderer) drawOverlay(boardW, boardH int32) {
	rl.DrawRectangle(r.offsetX, r.offsetY, boardW, boardH, rl.Fade(rl.Black, 0.6))
	if r.overlay == "" {
		return
	}
	textWidth := rl.MeasureText(r.overlay, fontSize+4)
	rl.DrawText(r.overlay,
		r.offsetX+(boardW-textWidth)/2,
		r.offsetY+boardH/2-(fontSize+4)/2,
		fontSize+4, rl.White)
}

type statLine struct {
	label string
	value string
}

func statsLines(score, best int, speed float64) []statLine {
	return []statLine{
		{"SCORE", fmt.Sprintf("%d", score)},
		{"BEST", fmt.Sprintf("%d", best)},
		{"SPEED", FormatSpeed(speed)},
	}
}

var helpLines = []string{
	"Arrows/WASD  move",
	"Space  start/pause",
	"P  pause",
	"R  restart",
	"Q  quit",
}

// FormatSpeed renders a multiplier the way the panel shows it, e.g. "1.1x"
func FormatSpeed(multiplier float64) string {
	return fmt.Sprintf("%.1fx", multiplier)
}

func bodyColor(c entity.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

// segmentAlpha fades the body from 0.4 at the head to nearly opaque at the tail
func segmentAlpha(index, length int) float32 {
	if length <= 0 {
		return 1
	}
	return 0.4 + float32(index)/float32(length)*0.6
}
