package main

import (
	"flag"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"spades/internal/config"
	"spades/internal/ui"
)

func main() {
	configPath := flag.String("config", "spades.json", "path to the game config file")
	debugLog := flag.String("log", "", "append debug logs to this file")
	flag.Parse()

	if *debugLog != "" {
		f, err := os.OpenFile(*debugLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal("Failed to open log file", "err", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := config.LoadGameConfig(*configPath); err != nil {
		log.Fatal("Failed to load config", "path", *configPath, "err", err)
	}
	cfg := config.GetGameConfig()

	p := tea.NewProgram(ui.NewModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal("Program error", "err", err)
	}
}
