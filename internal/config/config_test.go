package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGameConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"player_name":"Alice","ai_delay_ms":100}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadGameConfig(path); err != nil {
		t.Fatal(err)
	}
	c := GetGameConfig()
	if c.PlayerName != "Alice" {
		t.Errorf("PlayerName = %q, want Alice", c.PlayerName)
	}
	if c.AIDelayMs != 100 {
		t.Errorf("AIDelayMs = %d, want 100", c.AIDelayMs)
	}
	// Fields absent from the file keep their defaults.
	if c.TrickPauseMs != defaults().TrickPauseMs {
		t.Errorf("TrickPauseMs = %d, want default %d", c.TrickPauseMs, defaults().TrickPauseMs)
	}
}
