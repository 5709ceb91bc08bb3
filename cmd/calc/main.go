package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"deskcalc/internal/config"
	"deskcalc/internal/history"
	"deskcalc/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	var store *history.Store
	if cfg.History.Enabled {
		if err := os.MkdirAll(filepath.Dir(cfg.History.Path), 0o755); err == nil {
			store, _ = history.Open(cfg.History.Path)
		}
	}
	if store != nil {
		defer store.Close()
	}

	p := tea.NewProgram(tui.New(store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "running calculator: %v\n", err)
		os.Exit(1)
	}
}
