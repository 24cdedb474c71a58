// Package dialogs holds the modal overlays of the terminal desktop. They
// float above the panels and are not tracked by the registry.
package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is a modal the desktop routes all input to while it is visible.
// A dialog reports completion with its own message type.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string
	IsVisible() bool
	Hide()
}
