package terminal

import (
	"context"
	"testing"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	ch, _, _, _ := screen.GetContent(x, y)
	return ch
}

func TestRendererDrawsBoard(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen, nil)
	g := game.NewGame(game.Options{Grid: types.NewGrid(20), Seed: 11}, r)

	r.Draw()

	snap := g.Snapshot()
	for _, p := range snap.Snake {
		x, y := CellPosition(p)
		if runeAt(screen, x, y) != snakeGlyph || runeAt(screen, x+1, y) != snakeGlyph {
			t.Errorf("snake cell %v not drawn at (%d,%d)", p, x, y)
		}
	}
	fx, fy := CellPosition(snap.Food)
	if runeAt(screen, fx, fy) != foodGlyph {
		t.Errorf("food %v not drawn", snap.Food)
	}
	if runeAt(screen, 0, 0) != '┌' || runeAt(screen, 41, 21) != '┘' {
		t.Error("border corners missing")
	}
}

func TestRendererOverlayAndStatus(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen, nil)
	game.NewGame(game.Options{Grid: types.NewGrid(20), Seed: 11}, r)
	r.ReportScore(30)
	r.Draw()

	row := readRow(screen, 22, 40)
	if want := "Score 30  Best 0  Speed 1.0x"; row[1:1+len(want)] != want {
		t.Errorf("status row = %q", row)
	}

	overlayRow := readRow(screen, 11, 42)
	if !contains(overlayRow, game.MsgStart) {
		t.Errorf("overlay row = %q, want %q", overlayRow, game.MsgStart)
	}

	r.HideOverlay()
	r.Draw()
	if contains(readRow(screen, 11, 42), game.MsgStart) {
		t.Error("overlay still drawn after HideOverlay")
	}
}

func readRow(screen tcell.Screen, y, width int) string {
	out := make([]rune, width)
	for x := 0; x < width; x++ {
		out[x] = runeAt(screen, x, y)
	}
	return string(out)
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

func TestCommandForKey(t *testing.T) {
	tests := []struct {
		name  string
		ev    *tcell.EventKey
		phase types.Phase
		want  game.Command
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), types.Running, game.CmdDirection{Dir: types.Up}},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), types.Running, game.CmdDirection{Dir: types.Left}},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), types.Running, game.CmdDirection{Dir: types.Right}},
		{"S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), types.Running, game.CmdDirection{Dir: types.Down}},
		{"space idle", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), types.Idle, game.CmdStart{}},
		{"space running", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), types.Running, game.CmdTogglePause{}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), types.GameOver, game.CmdStart{}},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), types.Running, game.CmdRestart{AutoStart: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CommandForKey(tt.ev, tt.phase)
			if !ok || got != tt.want {
				t.Errorf("CommandForKey = %#v, %v; want %#v", got, ok, tt.want)
			}
		})
	}

	if _, ok := CommandForKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), types.Running); ok {
		t.Error("unbound rune should be ignored")
	}
}

func TestIsQuit(t *testing.T) {
	if !IsQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) || !IsQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("escape and q should quit")
	}
	if IsQuit(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)) {
		t.Error("w should not quit")
	}
}

func TestHandleEventDrivesGame(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen, nil)
	g := game.NewGame(game.Options{Grid: types.NewGrid(20), Seed: 11}, r)

	if !handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), g, r) {
		t.Fatal("space should not quit")
	}
	if g.Phase() != types.Running {
		t.Fatalf("phase = %v, want running", g.Phase())
	}
	if handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), g, r) {
		t.Error("ctrl-c should quit")
	}
}

func TestRendererUsesSnapshotColor(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen, nil)

	red := entity.Color{R: 200, G: 0, B: 0}
	body := []types.Point{{X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3}}
	r.Render(game.Snapshot{
		Grid:  types.NewGrid(20),
		Snake: body,
		Color: red,
		Food:  types.Point{X: -1, Y: -1},
	})
	r.Draw()

	for i, p := range body {
		x, y := CellPosition(p)
		_, _, style, _ := screen.GetContent(x, y)
		fg, _, _ := style.Decompose()
		if want := segmentColor(red, i, len(body)); fg != want {
			t.Errorf("segment %d color = %v, want %v", i, fg, want)
		}
		if fg == segmentColor(entity.DefaultColor, i, len(body)) {
			t.Errorf("segment %d drawn in the default color", i)
		}
	}
}

func TestDrainEvents(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen, nil)
	g := game.NewGame(game.Options{Grid: types.NewGrid(20), Seed: 11}, r)

	events := make(chan tcell.Event, 4)
	events <- tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	events <- tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
	if !drainEvents(events, g, r) {
		t.Fatal("drainEvents reported quit without a quit key")
	}
	if g.Phase() != types.Running {
		t.Errorf("phase = %v, want running", g.Phase())
	}
	if len(events) != 0 {
		t.Errorf("%d events left undrained", len(events))
	}

	events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	events <- tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)
	if drainEvents(events, g, r) {
		t.Error("q should quit")
	}
	if g.Phase() != types.Running {
		t.Errorf("keys after quit were applied: phase = %v", g.Phase())
	}

	close(events)
	for len(events) > 0 {
		<-events
	}
	if drainEvents(events, g, r) {
		t.Error("closed event stream should quit")
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen, nil)
	g := game.NewGame(game.Options{Grid: types.NewGrid(20), Seed: 11}, r)

	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Run(ctx, screen, g, r); err != nil {
		t.Fatalf("Run = %v, want nil on quit", err)
	}
	if g.Phase() != types.Running {
		t.Errorf("phase = %v, want running after space", g.Phase())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen, nil)
	g := game.NewGame(game.Options{Grid: types.NewGrid(20), Seed: 11}, r)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, screen, g, r); err != context.Canceled {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
}
