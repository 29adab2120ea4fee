package tui

import (
	"share-cli/internal/share"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	// Theme is light, dark or auto.
	Theme string
}

// Run shows the share dialog for ctl until the user closes it.
func Run(ctl *share.Controller, opts Options) error {
	applyThemePreference(opts.Theme)
	applyColorProfilePreference()

	m := newDialogModel(ctl)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
