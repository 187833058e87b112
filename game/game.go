package game

import (
	"log"
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// StepResult reports what a single step did
type StepResult int

const (
	StepIdle StepResult = iota // not running, nothing changed
	StepMoved
	StepAte
	StepWallCrash
	StepSelfCrash
	StepWon
)

func (r StepResult) String() string {
	switch r {
	case StepMoved:
		return "moved"
	case StepAte:
		return "ate"
	case StepWallCrash:
		return "wall crash"
	case StepSelfCrash:
		return "self crash"
	case StepWon:
		return "won"
	default:
		return "idle"
	}
}

// noFood marks the food slot empty once the board is full
var noFood = types.Point{X: -1, Y: -1}

// Options configures a Game
type Options struct {
	Grid         types.Grid
	BaseInterval time.Duration
	Seed         uint64 // food placement seed, 0 draws from the clock
	Store        manager.Store
}

// Game owns the single mutable game state. It is not safe for concurrent
// use; hosts feed commands and frames from one goroutine.
type Game struct {
	UUID      string
	Grid      types.Grid
	StartTime time.Time

	snake *entity.Snake
	food  types.Point
	score int
	speed float64
	phase types.Phase
	won   bool
	armed bool

	out          Output
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	speedMgr     *manager.SpeedManager
	stateMgr     *manager.StateManager
}

// NewGame builds a game in the Idle phase with a fresh board drawn and the
// start prompt shown.
func NewGame(opts Options, out Output) *Game {
	if opts.Grid.Width <= 0 || opts.Grid.Height <= 0 {
		opts.Grid = types.NewGrid(types.DefaultGridSize)
	}
	if out == nil {
		out = NopOutput{}
	}

	collisionMgr := manager.NewCollisionManager(opts.Grid)
	g := &Game{
		Grid:         opts.Grid,
		phase:        types.Idle,
		out:          out,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(opts.Grid, collisionMgr, opts.Seed),
		speedMgr:     manager.NewSpeedManager(opts.BaseInterval),
		stateMgr:     manager.NewStateManager(opts.Store),
	}

	g.out.ReportBestScore(g.stateMgr.GetHighScore())
	g.reset()
	g.out.Render(g.Snapshot())
	g.out.ShowOverlay(MsgStart)
	return g
}

// reset puts a fresh session on the board without changing the phase
func (g *Game) reset() {
	g.UUID = uuid.New().String()
	g.StartTime = time.Now()
	g.snake = entity.NewSnake(types.StartBody, types.StartDirection, entity.DefaultColor)
	g.score = 0
	g.speed = 1
	g.won = false
	g.food = g.placeFood()

	g.out.ReportScore(g.score)
	g.out.ReportSpeed(g.speed)
}

func (g *Game) placeFood() types.Point {
	food, err := g.foodMgr.PlaceFood(g.snake.Body)
	if err != nil {
		return noFood
	}
	return food
}

// Start begins a new session unless one is already live
func (g *Game) Start() {
	if g.live() {
		return
	}
	g.reset()
	g.phase = types.Running
	g.armed = true
	g.out.HideOverlay()
	log.Printf("session %s started", g.UUID)
}

// TogglePause switches between Running and Paused
func (g *Game) TogglePause() {
	switch g.phase {
	case types.Running:
		g.phase = types.Paused
		g.out.ShowOverlay(MsgPaused)
	case types.Paused:
		g.phase = types.Running
		g.out.HideOverlay()
	}
}

// Restart cancels the running loop and resets the board. With autoStart the
// new session starts immediately, otherwise the game waits in Idle.
func (g *Game) Restart(autoStart bool) {
	g.armed = false
	g.phase = types.Idle
	g.reset()
	g.out.Render(g.Snapshot())

	if !autoStart {
		g.out.ShowOverlay(MsgStart)
		return
	}
	g.phase = types.Running
	g.armed = true
	g.out.HideOverlay()
	log.Printf("session %s restarted", g.UUID)
}

// SetDirection queues dir for the next step, starting a session first when
// none is live. A reversal is ignored while the snake is longer than one cell.
func (g *Game) SetDirection(dir types.Direction) {
	if !g.live() {
		g.Start()
	}
	g.snake.SetDirection(dir)
}

// Step advances the simulation by one cell. It does nothing unless Running.
func (g *Game) Step() StepResult {
	if g.phase != types.Running {
		return StepIdle
	}

	g.snake.AdoptPending()
	newHead := g.snake.NextHead()

	switch g.collisionMgr.CheckCollision(newHead, g.snake) {
	case manager.WallCollision:
		g.gameOver(manager.WallCollision)
		return StepWallCrash
	case manager.SelfCollision:
		g.gameOver(manager.SelfCollision)
		return StepSelfCrash
	}

	g.snake.Move(newHead)

	result := StepMoved
	if g.collisionMgr.IsFoodCollision(newHead, g.food) {
		result = g.eat()
	} else {
		g.snake.RemoveTail()
	}

	g.out.Render(g.Snapshot())
	return result
}

// eat scores the food under the head and grows the snake by keeping its tail
func (g *Game) eat() StepResult {
	g.score += types.FoodReward
	g.speed = g.speedMgr.Multiplier(g.snake.Len())
	g.out.ReportScore(g.score)
	g.out.ReportSpeed(g.speed)

	food, err := g.foodMgr.PlaceFood(g.snake.Body)
	g.out.PlayCue(CueEat)
	g.updateBestScore()

	if errors.Is(err, manager.ErrBoardFull) {
		g.food = noFood
		g.won = true
		g.phase = types.GameOver
		g.armed = false
		g.out.ShowOverlay(MsgWon)
		log.Printf("session %s cleared the board in %s with score %d",
			g.UUID, time.Since(g.StartTime).Round(time.Millisecond), g.score)
		return StepWon
	}
	g.food = food
	return StepAte
}

func (g *Game) gameOver(cause manager.CollisionType) {
	g.out.PlayCue(CueCrash)
	g.phase = types.GameOver
	g.armed = false
	g.out.ShowOverlay(MsgGameOver)
	log.Printf("session %s over after %s: %s collision, score %d",
		g.UUID, time.Since(g.StartTime).Round(time.Millisecond), cause, g.score)
}

func (g *Game) updateBestScore() {
	if g.stateMgr.UpdateScore(g.score) {
		g.out.ReportBestScore(g.score)
		log.Printf("new best score %d", g.score)
	}
}

func (g *Game) live() bool {
	return g.phase == types.Running || g.phase == types.Paused
}

// Snapshot copies the current state for readers
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Grid:      g.Grid,
		Snake:     g.snake.BodyCopy(),
		Direction: g.snake.Direction,
		Color:     g.snake.Color,
		Food:      g.food,
		Score:     g.score,
		Best:      g.stateMgr.GetHighScore(),
		Speed:     g.speed,
		Phase:     g.phase,
		Won:       g.won,
	}
}

func (g *Game) Phase() types.Phase {
	return g.phase
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) BestScore() int {
	return g.stateMgr.GetHighScore()
}

func (g *Game) Speed() float64 {
	return g.speed
}

// Armed reports whether the frame loop should keep driving steps
func (g *Game) Armed() bool {
	return g.armed
}

// Interval is the wall-clock time between steps at the current speed
func (g *Game) Interval() time.Duration {
	return g.speedMgr.Interval(g.speed)
}
