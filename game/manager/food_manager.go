package manager

import (
	"time"

	"snake-arcade/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when every cell is occupied and no food can be placed
var ErrBoardFull = errors.New("no free cell left for food")

// sampleFactor bounds rejection sampling at sampleFactor*cells draws before
// falling back to picking directly among the free cells.
const sampleFactor = 4

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

// NewFoodManager creates a food manager. A zero seed draws one from the clock.
func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// PlaceFood picks a uniformly random cell not in occupied
func (fm *FoodManager) PlaceFood(occupied []types.Point) (types.Point, error) {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		if fm.grid.InBounds(p) {
			taken[p] = struct{}{}
		}
	}

	cells := fm.grid.Cells()
	if len(taken) >= cells {
		return types.Point{}, ErrBoardFull
	}

	for i := 0; i < cells*sampleFactor; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, taken) {
			return food, nil
		}
	}

	return fm.pickFree(taken)
}

// pickFree selects uniformly among the enumerated free cells
func (fm *FoodManager) pickFree(taken map[types.Point]struct{}) (types.Point, error) {
	free := make([]types.Point, 0, fm.grid.Cells()-len(taken))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, ErrBoardFull
	}
	return free[fm.rng.Intn(len(free))], nil
}
