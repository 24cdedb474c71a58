package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/winman/logging"
)

// --- Messages ---------------------------------------------------------------

type (
	// TitleConfirmedMsg carries the entered title. An empty Title asks the
	// registry for its default "Dialog N".
	TitleConfirmedMsg struct{ Title string }
	TitleCanceledMsg  struct{}
)

// Title prompts for the title of a new panel.
type Title struct {
	input   textinput.Model
	visible bool
}

func (d Title) Init() tea.Cmd { return textinput.Blink }

// NewTitleDialog creates a prompt with placeholder as the suggested
// default title.
func NewTitleDialog(placeholder string) *Title {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "Title: "
	ti.CharLimit = 80
	ti.Width = 50
	ti.Focus()
	return &Title{input: ti, visible: true}
}

func (d *Title) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			title := strings.TrimSpace(d.input.Value())
			logging.Debugf("TitleDialog: confirmed %q", title)
			return d, func() tea.Msg { return TitleConfirmedMsg{Title: title} }
		case "esc":
			logging.Debug("TitleDialog: canceled")
			return d, func() tea.Msg { return TitleCanceledMsg{} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d Title) View() string {
	if !d.visible {
		return ""
	}
	help := lipgloss.NewStyle().
		Faint(true).
		Render("enter to open • empty for default • esc to cancel")

	content := fmt.Sprintf("%s\n\n%s", d.input.View(), help)
	return boxStyle().Render(content)
}

// Value returns the current input text.
func (d Title) Value() string { return d.input.Value() }

func (d *Title) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d Title) IsVisible() bool { return d.visible }
