package manager

import (
	"math"
	"time"

	"snake-arcade/game/types"
)

// SpeedManager maps snake length to a speed multiplier and the multiplier
// to the wall-clock time between steps.
type SpeedManager struct {
	base       time.Duration
	cap        float64
	growthRate float64
}

func NewSpeedManager(base time.Duration) *SpeedManager {
	if base <= 0 {
		base = types.BaseIntervalMs * time.Millisecond
	}
	return &SpeedManager{
		base:       base,
		cap:        types.SpeedCap,
		growthRate: types.SpeedGrowthRate,
	}
}

// Multiplier returns min(cap, 1 + length*growthRate)
func (sm *SpeedManager) Multiplier(length int) float64 {
	return math.Min(sm.cap, 1+float64(length)*sm.growthRate)
}

// Interval is the time one step takes at the given multiplier
func (sm *SpeedManager) Interval(multiplier float64) time.Duration {
	if multiplier <= 0 {
		multiplier = 1
	}
	return time.Duration(float64(sm.base) / multiplier)
}
