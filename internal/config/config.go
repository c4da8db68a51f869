package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GameConfig holds the tunable presentation settings. All pauses are in
// milliseconds and only affect pacing, never rules.
type GameConfig struct {
	PlayerName string `json:"player_name"`
	// DefaultMode preselects the menu game mode: "partnership" or
	// "individual".
	DefaultMode string `json:"default_mode"`
	// DefaultDifficulty preselects the AI tier: "easy", "medium" or "hard".
	DefaultDifficulty string `json:"default_difficulty"`
	// AIDelayMs is the thinking pause before each AI bid or card.
	AIDelayMs int `json:"ai_delay_ms"`
	// TrickPauseMs keeps a finished trick on the table before clearing it.
	TrickPauseMs int `json:"trick_pause_ms"`
	// ScorePauseMs holds the round score screen before the next deal.
	ScorePauseMs int `json:"score_pause_ms"`
	// DealPauseMs shows the fresh deal before bidding opens.
	DealPauseMs int `json:"deal_pause_ms"`
}

func defaults() *GameConfig {
	return &GameConfig{
		DefaultMode:       "partnership",
		DefaultDifficulty: "medium",
		AIDelayMs:         800,
		TrickPauseMs:      1500,
		ScorePauseMs:      2500,
		DealPauseMs:       600,
	}
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path. A missing
// file is not an error; the defaults apply. Later calls are no-ops.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		c := defaults()
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				cfg = c
				return
			}
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		if err := json.Unmarshal(data, c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration. Defaults are returned
// when nothing has been loaded yet.
func GetGameConfig() *GameConfig {
	if cfg == nil {
		return defaults()
	}
	return cfg
}
