// Package tui implements the outreach dashboard using Bubble Tea.
package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Common key binding constants.
const (
	KeyCtrlC = "ctrl+c"
	KeyCtrlS = "ctrl+s"
	KeyTab   = "tab"
	KeyEnter = "enter"
	KeyEsc   = "esc"
)

// IsTTY returns true if stdout is connected to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Run starts the TUI program with the given model in alternate screen
// mode. Non-TTY environments are pointed at the CLI commands instead.
func Run(m tea.Model) error {
	if IsTTY() {
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err := p.Run()
		return err
	}
	fmt.Println("Non-TTY environment detected.")
	fmt.Println("Use 'leadtrack status' or 'leadtrack activity' for non-interactive output.")
	return nil
}
