package bot

import (
	"fmt"
	"math/rand"
	"time"

	"spades/internal/domain"
)

// NewBrain creates the strategy for the given difficulty tier. The rng is
// only consulted by the Easy tier; Medium and Hard are deterministic given
// the state. A nil rng falls back to a time-seeded one.
func NewBrain(difficulty domain.Difficulty, rng *rand.Rand) (Brain, error) {
	switch difficulty {
	case domain.Easy:
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		return &EasyBot{rng: rng}, nil
	case domain.Medium:
		return &MediumBot{}, nil
	case domain.Hard:
		return &HardBot{}, nil
	default:
		return nil, fmt.Errorf("unknown difficulty: %d", difficulty)
	}
}
