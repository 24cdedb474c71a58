package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type HelpClosedMsg struct{}

// Help is a visible flag + a list of key bindings to show.
type Help struct {
	visible  bool
	bindings []key.Binding
}

func (d Help) Init() tea.Cmd { return nil }

// NewHelpDialog creates a new help dialog showing the given bindings.
func NewHelpDialog(bindings []key.Binding) *Help {
	return &Help{
		visible:  true,
		bindings: bindings,
	}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "?", "q":
			d.visible = false
			return d, func() tea.Msg { return HelpClosedMsg{} }
		}
	}
	return d, nil
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}

	var lines []string
	for _, b := range d.bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
	}

	hint := lipgloss.NewStyle().
		Faint(true).
		Render("enter/esc to return")

	content := fmt.Sprintf("%s\n\n%s", strings.Join(lines, "\n"), hint)
	return boxStyle().Render(content)
}

func (d *Help) Hide() {
	d.visible = false
}

func (d Help) IsVisible() bool { return d.visible }
