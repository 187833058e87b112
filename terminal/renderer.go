package terminal

import (
	"fmt"

	"snake-arcade/audio"
	"snake-arcade/game"
	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
)

// Glyphs; each board cell is two terminal columns wide
const (
	cellWidth  = 2
	snakeGlyph = '█'
	foodGlyph  = '●'
)

var (
	styleBorder  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(80, 90, 110))
	styleFood    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 77, 109))
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleLabel   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(140, 150, 165))
	styleOverlay = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true)
)

// Renderer draws the board onto a tcell screen and implements game.Output
type Renderer struct {
	screen tcell.Screen

	snap        game.Snapshot
	score       int
	best        int
	speed       float64
	overlay     string
	showOverlay bool

	sound audio.Player
}

func NewRenderer(screen tcell.Screen, sound audio.Player) *Renderer {
	if sound == nil {
		sound = audio.Silent{}
	}
	return &Renderer{
		screen: screen,
		speed:  1,
		sound:  sound,
	}
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

// CellPosition returns the screen column and row of a board cell's left half
func CellPosition(p types.Point) (int, int) {
	return 1 + p.X*cellWidth, 1 + p.Y
}

// Draw paints the last snapshot, the status line and the overlay, then shows the screen
func (r *Renderer) Draw() {
	r.screen.Clear()

	grid := r.snap.Grid
	r.drawBorder(grid)

	for i, p := range r.snap.Snake {
		style := tcell.StyleDefault.Foreground(segmentColor(r.snap.Color, i, len(r.snap.Snake)))
		r.setCell(p, snakeGlyph, style)
	}
	if r.snap.HasFood() {
		x, y := CellPosition(r.snap.Food)
		r.screen.SetContent(x, y, foodGlyph, nil, styleFood)
	}

	r.drawStatus(grid.Height + 2)

	if r.showOverlay && r.overlay != "" {
		r.drawOverlay(grid)
	}
	r.screen.Show()
}

func (r *Renderer) setCell(p types.Point, ch rune, style tcell.Style) {
	x, y := CellPosition(p)
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawBorder(grid types.Grid) {
	right := grid.Width*cellWidth + 1
	bottom := grid.Height + 1
	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, '─', nil, styleBorder)
		r.screen.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, styleBorder)
		r.screen.SetContent(right, y, '│', nil, styleBorder)
	}
	r.screen.SetContent(0, 0, '┌', nil, styleBorder)
	r.screen.SetContent(right, 0, '┐', nil, styleBorder)
	r.screen.SetContent(0, bottom, '└', nil, styleBorder)
	r.screen.SetContent(right, bottom, '┘', nil, styleBorder)
}

func (r *Renderer) drawStatus(row int) {
	x := 1
	x = r.drawText(x, row, "Score ", styleLabel)
	x = r.drawText(x, row, fmt.Sprintf("%d", r.score), styleStatus)
	x = r.drawText(x, row, "  Best ", styleLabel)
	x = r.drawText(x, row, fmt.Sprintf("%d", r.best), styleStatus)
	x = r.drawText(x, row, "  Speed ", styleLabel)
	r.drawText(x, row, fmt.Sprintf("%.1fx", r.speed), styleStatus)

	r.drawText(1, row+1, "arrows/wasd move  space start/pause  r restart  q quit", styleLabel)
}

func (r *Renderer) drawOverlay(grid types.Grid) {
	msg := " " + r.overlay + " "
	width := grid.Width*cellWidth + 2
	x := (width - len([]rune(msg))) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, 1+grid.Height/2, msg, styleOverlay)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// segmentColor fades c from dim at the head to full strength at the tail
func segmentColor(c entity.Color, index, length int) tcell.Color {
	intensity := 0.4
	if length > 0 {
		intensity += float64(index) / float64(length) * 0.6
	}
	return tcell.NewRGBColor(
		int32(float64(c.R)*intensity),
		int32(float64(c.G)*intensity),
		int32(float64(c.B)*intensity))
}
