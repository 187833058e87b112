package manager

import (
	"log"
)

// BestScoreKey is the identifier the best score is persisted under
const BestScoreKey = "snake-best-score"

type StateManager struct {
	store     Store
	highScore int
}

// NewStateManager loads the best score once; a missing or unreadable value counts as 0.
func NewStateManager(store Store) *StateManager {
	if store == nil {
		store = NewMemoryStore()
	}
	sm := &StateManager{store: store}

	best, ok, err := store.Load(BestScoreKey)
	if err != nil {
		log.Printf("best score: load failed, starting from 0: %v", err)
	} else if ok && best > 0 {
		sm.highScore = best
	}
	return sm
}

// UpdateScore records score and persists it when it beats the best so far.
// It reports whether a new best was reached.
func (sm *StateManager) UpdateScore(score int) bool {
	if score <= sm.highScore {
		return false
	}
	sm.highScore = score
	if err := sm.store.Save(BestScoreKey, score); err != nil {
		log.Printf("best score: save failed: %v", err)
	}
	return true
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}
