package main

import (
	"fmt"
	"os"

	"codeberg.org/devfolio/server/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	app := tui.NewApp()
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running devfolio dashboard: %v\n", err)
		os.Exit(1)
	}
}
