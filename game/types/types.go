package types

// Point is a single cell of the board
type Point struct {
	X, Y int
}

// Add returns the cell reached by moving p one step along d
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is a unit vector along one of the board axes
type Direction = Point

var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Opposite reports whether b points exactly against a
func Opposite(a, b Direction) bool {
	return a.X == -b.X && a.Y == -b.Y
}

// IsUnit reports whether d is one of the four movement directions
func IsUnit(d Direction) bool {
	return d == Up || d == Down || d == Left || d == Right
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// NewGrid returns a square grid with n cells per side
func NewGrid(n int) Grid {
	return Grid{Width: n, Height: n}
}

// InBounds reports whether p lies inside the grid
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the total number of cells
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Phase is the lifecycle state of a game session
type Phase int

const (
	Idle Phase = iota
	Running
	Paused
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Game constants
const (
	DefaultGridSize = 20  // Cells per side
	MinGridSize     = 12  // Smallest board that still fits the start position
	FoodReward      = 10  // Score per food eaten
	BaseIntervalMs  = 160 // Milliseconds per step at speed 1.0
	SpeedCap        = 3.5
	SpeedGrowthRate = 0.03
)

// StartBody is the fixed three segment snake every session begins with, head first.
var StartBody = []Point{{X: 8, Y: 10}, {X: 7, Y: 10}, {X: 6, Y: 10}}

// StartDirection is the heading of a fresh snake
var StartDirection = Right
